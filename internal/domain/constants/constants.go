// Package constants holds configuration values compared across packages.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
