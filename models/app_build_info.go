package models

// AppBuildInfo describes the running build. Values are injected at link
// time or taken from configuration.
type AppBuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	Commit    string `json:"commit"`
}
