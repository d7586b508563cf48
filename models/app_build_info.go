// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build metadata injected by linker flags and served by
// GET /api/version.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// NewAppBuildInfo constructs [AppBuildInfo]. Linker placeholders such as
// "N/A" are dropped.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	clean := func(s string) string {
		if s == "N/A" {
			return ""
		}
		return s
	}

	return AppBuildInfo{
		Version: version,
		Date:    clean(date),
		Commit:  clean(commit),
	}
}
