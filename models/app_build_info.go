// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the version stamp of the fixture tools, filled from the
// -ldflags variables in cmd/generate and printed by the -version flag.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns an [AppBuildInfo]. Empty values are reported as N/A.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release tag.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns when the binary was linked.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
