package v1

import (
	"github.com/cmk-notify/alerting/receivers/schema"
)

const Version = schema.V1

// Property names of the settings, as read by the notification script.
const (
	FieldURL      = "url"
	FieldToken    = "token"
	FieldPriority = "priority"
	FieldTitle    = "gotify_title"
)

const (
	MinPriority     = 1
	MaxPriority     = 7
	DefaultPriority = 4
	DefaultTitle    = "CheckMK"
)

func Schema() schema.IntegrationSchemaVersion {
	return schema.IntegrationSchemaVersion{
		Version:   Version,
		CanCreate: true,
		Title:     "Create notification with the following parameters",
		Options: []schema.Field{
			schema.TextField(FieldURL, "url", "URL for of Gotify Server", schema.TextConstraints{
				Size: 46,
			}).AsRequired(),
			schema.TextField(FieldToken, "token", "Token to send notifications", schema.TextConstraints{
				Size: 24,
			}).AsRequired().AsSecure(),
			// The priority bands in the help text overlap. Only the numeric bounds are authoritative.
			schema.IntegerField(FieldPriority, "Priority",
				"Message priority. The Android client classifies messages by High (7), Normal (4-7), Low (1-3) and Minimum priority (1).",
				schema.IntegerConstraints{
					Size: 24,
					Min:  MinPriority,
					Max:  MaxPriority,
				}).AsRequired().WithDefault(DefaultPriority),
			schema.TextField(FieldTitle, "Gotify Title", "Title of Gotify notification", schema.TextConstraints{
				Size:       24,
				AllowEmpty: true,
			}).WithDefault(DefaultTitle),
		},
	}
}
