package version

import "fmt"

// Set at build time with
//
//	-ldflags "-X github.com/harshgajera101/SmartSanstha-sub001/internal/version.Version=v1.2.0 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata reported by the API and the CLI.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty"`
}

func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty == "true"}
}

// String renders the metadata on one line, e.g. "v1.2.0 (abc123, dirty)".
func (i Info) String() string {
	s := fmt.Sprintf("%s (%s", i.Version, i.Commit)
	if i.Dirty {
		s += ", dirty"
	}
	if i.Date != "" {
		s += ", " + i.Date
	}
	return s + ")"
}
