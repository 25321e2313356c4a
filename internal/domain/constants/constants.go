package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
