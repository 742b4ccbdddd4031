package service

import (
	"github.com/montanaflynn/stats"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// Summary aggregates the scores of a set of verification results.
type Summary struct {
	Count        int
	GenuineCount int
	MeanScore    float64
	MedianScore  float64
}

// SummarizeScores computes score statistics over results.
func SummarizeScores(results []*domain.VerificationResult) Summary {
	summary := Summary{Count: len(results)}
	if len(results) == 0 {
		return summary
	}

	scores := make(stats.Float64Data, len(results))
	for i, result := range results {
		scores[i] = float64(result.Score)
		if result.Status == domain.ProfileStatusGenuine {
			summary.GenuineCount++
		}
	}

	// Errors are only returned for empty input, which is handled above.
	mean, _ := stats.Mean(scores)
	median, _ := stats.Median(scores)
	summary.MeanScore, _ = stats.Round(mean, 1)
	summary.MedianScore, _ = stats.Round(median, 1)

	return summary
}
