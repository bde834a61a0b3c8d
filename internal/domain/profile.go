package domain

// NoName replaces the display name of accounts that did not set one.
const NoName = "No name available"

// Status is the outcome of a lookup. The zero value means no lookup has settled yet.
type Status int

const (
	StatusNone Status = iota
	StatusEmptyInput
	StatusNotFound
	StatusFound
	StatusOtherError
	StatusNetworkFailure
)

var statusNames = [...]string{
	StatusNone:           "none",
	StatusEmptyInput:     "empty-input",
	StatusNotFound:       "not-found",
	StatusFound:          "found",
	StatusOtherError:     "other-error",
	StatusNetworkFailure: "network-failure",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Set reports whether the status holds the outcome of a settled lookup.
func (s Status) Set() bool {
	return s != StatusNone
}

// Success reports whether the status should be displayed with success styling.
func (s Status) Success() bool {
	return s == StatusFound
}

// UserRecord is the subset of the GitHub user object the application consumes.
type UserRecord struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

type ProfileSummary struct {
	Name        string
	AvatarURL   string
	ProfileURL  string
	Followers   int
	PublicRepos int
}

// Summarize projects a remote record into the summary shown to the user.
func Summarize(r UserRecord) ProfileSummary {
	name := r.Name
	if name == "" {
		name = NoName
	}
	return ProfileSummary{
		Name:        name,
		AvatarURL:   r.AvatarURL,
		ProfileURL:  r.HTMLURL,
		Followers:   r.Followers,
		PublicRepos: r.PublicRepos,
	}
}

// State is a snapshot of a lookup widget. Summary is non nil if and only if Status is StatusFound.
type State struct {
	Identifier string
	Status     Status
	Summary    *ProfileSummary
}

