package model

import "fmt"

// Version is the conch release reported by --version and compared by --update.
const Version = "0.1.0"

// Repository that releases are published to on GitHub.
const (
	RepoOwner = "conch-sh"
	RepoName  = "conch"
)

// ReleasesURL is where new versions can be downloaded.
func ReleasesURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/releases", RepoOwner, RepoName)
}
