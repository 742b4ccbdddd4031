package service

import (
	"sort"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// Score compares resume skills with GitHub languages. The score is the share
// of resume skills backed by a repository language, as a whole percentage
// rounded down. Without resume skills the score is 0.
func Score(resumeSkills, githubLanguages []string) (matched []string, score int) {
	languages := make(map[string]struct{}, len(githubLanguages))
	for _, lang := range githubLanguages {
		languages[lang] = struct{}{}
	}

	seen := make(map[string]struct{}, len(resumeSkills))
	matched = []string{}
	for _, skill := range resumeSkills {
		seen[skill] = struct{}{}
		if _, ok := languages[skill]; ok {
			matched = append(matched, skill)
		}
	}
	matched = dedupeSorted(matched)

	if len(seen) == 0 {
		return matched, 0
	}
	return matched, len(matched) * 100 / len(seen)
}

// StatusFor returns the verdict for a score.
func StatusFor(score int) domain.ProfileStatus {
	if score >= domain.GenuineThreshold {
		return domain.ProfileStatusGenuine
	}
	return domain.ProfileStatusSuspicious
}

func dedupeSorted(values []string) []string {
	sort.Strings(values)
	out := values[:0]
	for i, v := range values {
		if i > 0 && v == values[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}
