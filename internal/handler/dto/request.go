package dto

import (
	"fmt"
	"net/url"
	"strconv"
)

// ListResultsFilters represents query parameters for result listings.
type ListResultsFilters struct {
	GitHubUsername string // ?github=octocat
	Limit          int    // ?limit=50
	Offset         int    // ?offset=0
}

// ParseListResultsFilters reads ListResultsFilters from query parameters.
func ParseListResultsFilters(query url.Values) (ListResultsFilters, error) {
	filters := ListResultsFilters{GitHubUsername: query.Get("github")}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return ListResultsFilters{}, fmt.Errorf("limit must be a positive integer")
		}
		filters.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return ListResultsFilters{}, fmt.Errorf("offset must be a non-negative integer")
		}
		filters.Offset = offset
	}

	return filters, nil
}
