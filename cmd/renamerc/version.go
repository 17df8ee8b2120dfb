// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// versionInfo is what the binary knows about its own build
type versionInfo struct {
	Version   string
	GoVersion string
	Platform  string
	Revision  string
	Time      string
	Modified  bool
}

// getVersionInfo reads the version from build info, falling back to "dev"
func getVersionInfo() *versionInfo {
	info := &versionInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if v := buildInfo.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.time":
			info.Time = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// versionTemplate renders the --version output
func versionTemplate() string {
	info := getVersionInfo()
	modified := ""
	if info.Modified {
		modified = " (modified)"
	}
	return fmt.Sprintf(`renamerc %s
Revision:  %s%s
Built:     %s
Go:        %s
Platform:  %s
`, info.Version, info.Revision, modified, info.Time, info.GoVersion, info.Platform)
}
