package domain

import "time"

// ProfileStatus is the verdict attached to a verification result.
type ProfileStatus string

const (
	ProfileStatusGenuine    ProfileStatus = "GENUINE"
	ProfileStatusSuspicious ProfileStatus = "SUSPICIOUS"
)

// GenuineThreshold is the minimum score for a GENUINE verdict.
const GenuineThreshold = 50

// Label returns the human readable verdict shown on result pages.
func (s ProfileStatus) Label() string {
	switch s {
	case ProfileStatusGenuine:
		return "GENUINE PROFILE"
	case ProfileStatusSuspicious:
		return "POSSIBLY FAKE"
	default:
		return string(s)
	}
}

// IsValid reports whether s is a known status.
func (s ProfileStatus) IsValid() bool {
	return s == ProfileStatusGenuine || s == ProfileStatusSuspicious
}

// RepoSummary describes the public repositories of a GitHub user.
type RepoSummary struct {
	Languages   []string
	RepoCount   int
	SourceCount int
	ForkCount   int
}

// VerificationResult is a stored comparison of a resume with a GitHub profile.
type VerificationResult struct {
	ID                 string
	ResumeFilename     string
	GitHubProfile      string
	GitHubUsername     string
	ResumeSkills       []string
	GitHubLanguages    []string
	MatchedSkills      []string
	Score              int
	Status             ProfileStatus
	RepoCount          int
	SourceRepoCount    int
	ForkRepoCount      int
	ContributionLevels []int
	CreatedAt          time.Time
}
