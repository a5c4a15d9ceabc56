package models

import "strings"

// AppBuildInfo is the build metadata injected with -ldflags into the client
// and the dev ingestion server. Empty values mean a local build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// String renders "<version> (<short commit>)" for logs and the health
// answer, e.g. "1.4.0 (3f2a9c1)". A missing version reads "dev".
func (a AppBuildInfo) String() string {
	version := a.buildVersion
	if version == "" || version == "N/A" {
		version = "dev"
	}

	commit := a.buildCommit
	if commit == "" || commit == "N/A" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return version + " (" + commit + ")"
}
