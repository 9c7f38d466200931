package v1

// FullValidConfigForTesting is a string representation of a JSON object that contains all fields supported by Config.
const FullValidConfigForTesting = `{
	"url": "https://push.example.com",
	"token": "test-token",
	"priority": 7,
	"gotify_title": "Monitoring"
}`

// FullValidSecretsForTesting is a string representation of a JSON object that contains all fields that can be overridden from secrets.
const FullValidSecretsForTesting = `{
	"token": "test-secret-token"
}`
