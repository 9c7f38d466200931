package gotify

import (
	v1 "github.com/cmk-notify/alerting/receivers/gotify/v1"
	"github.com/cmk-notify/alerting/receivers/schema"
)

const Type schema.IntegrationType = "gotify"

func Schema() schema.IntegrationTypeSchema {
	return schema.IntegrationTypeSchema{
		Type:           Type,
		Name:           "Gotify",
		Description:    "Sends push notifications to a Gotify server",
		Heading:        "Gotify settings",
		CurrentVersion: v1.Version,
		Versions: []schema.IntegrationSchemaVersion{
			v1.Schema(),
		},
	}
}
