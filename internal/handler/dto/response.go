package dto

import (
	"time"

	"github.com/mtlprog/profilecheck/internal/chart"
	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/service"
)

// ResultResponse represents a verification result.
type ResultResponse struct {
	ID                 string       `json:"id"`
	ResumeFilename     string       `json:"resume_filename"`
	GitHubProfile      string       `json:"github_profile"`
	GitHubUsername     string       `json:"github_username"`
	ResumeSkills       []string     `json:"resume_skills"`
	GitHubLanguages    []string     `json:"github_languages"`
	MatchedSkills      []string     `json:"matched_skills"`
	Score              int          `json:"score"`
	Status             string       `json:"status"`
	StatusLabel        string       `json:"status_label"`
	RepoCount          int          `json:"repo_count"`
	SourceRepoCount    int          `json:"source_repo_count"`
	ForkRepoCount      int          `json:"fork_repo_count"`
	ContributionLevels []int        `json:"contribution_levels"`
	Chart              chart.Config `json:"chart"`
	CreatedAt          time.Time    `json:"created_at"`
}

// ResultsListResponse represents the response for result listings.
type ResultsListResponse struct {
	Results []ResultResponse `json:"results"`
	Summary SummaryResponse  `json:"summary"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// SummaryResponse represents score statistics over a listing.
type SummaryResponse struct {
	Count        int     `json:"count"`
	GenuineCount int     `json:"genuine_count"`
	MeanScore    float64 `json:"mean_score"`
	MedianScore  float64 `json:"median_score"`
}

// ToResultResponse converts domain.VerificationResult to ResultResponse.
func ToResultResponse(result *domain.VerificationResult) ResultResponse {
	return ResultResponse{
		ID:                 result.ID,
		ResumeFilename:     result.ResumeFilename,
		GitHubProfile:      result.GitHubProfile,
		GitHubUsername:     result.GitHubUsername,
		ResumeSkills:       orEmpty(result.ResumeSkills),
		GitHubLanguages:    orEmpty(result.GitHubLanguages),
		MatchedSkills:      orEmpty(result.MatchedSkills),
		Score:              result.Score,
		Status:             string(result.Status),
		StatusLabel:        result.Status.Label(),
		RepoCount:          result.RepoCount,
		SourceRepoCount:    result.SourceRepoCount,
		ForkRepoCount:      result.ForkRepoCount,
		ContributionLevels: orEmptyInts(result.ContributionLevels),
		Chart:              chart.Bar(chart.InputFor(result)),
		CreatedAt:          result.CreatedAt,
	}
}

// ToSummaryResponse converts service.Summary to SummaryResponse.
func ToSummaryResponse(summary service.Summary) SummaryResponse {
	return SummaryResponse{
		Count:        summary.Count,
		GenuineCount: summary.GenuineCount,
		MeanScore:    summary.MeanScore,
		MedianScore:  summary.MedianScore,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
