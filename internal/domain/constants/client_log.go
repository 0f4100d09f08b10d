package constants

// Client log providers
const (
	ClientLogProviderHTTP   = "http"
	ClientLogProviderGoogle = "google"
)
