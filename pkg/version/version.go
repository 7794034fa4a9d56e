package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Tag         = "v0.0.0-dev"
	ProgramName = "vessel"
)

func Get() string {
	commit, dirty := gitCommit()
	switch {
	case len(commit) >= 8 && dirty:
		return fmt.Sprintf("%s-%s-dirty", Tag, commit[:8])
	case len(commit) >= 8:
		return fmt.Sprintf("%s+%s", Tag, commit[:8])
	}
	return Tag
}

func gitCommit() (commit string, dirty bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.modified":
			dirty = setting.Value == "true"
		case "vcs.revision":
			commit = setting.Value
		}
	}
	return
}
