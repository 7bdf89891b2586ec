// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata injected with linker flags into
// the server binary. It is logged on start-up and reported by the version
// endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"build_date,omitempty"`
	Commit  string `json:"build_commit,omitempty"`
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A" except the version, which falls back to fallbackVersion.
func NewAppBuildInfo(version, date, commit, fallbackVersion string) AppBuildInfo {
	if version == "" || version == "N/A" {
		version = fallbackVersion
	}

	return AppBuildInfo{
		Version: version,
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
