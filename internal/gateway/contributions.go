package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultWebURL is the public GitHub site.
	DefaultWebURL = "https://github.com"

	// contributionDays is how many of the most recent calendar days are kept.
	contributionDays = 30

	browserUserAgent = "Mozilla/5.0"
)

// ContributionFetcher reads the contribution calendar of a GitHub user.
type ContributionFetcher interface {
	FetchLevels(ctx context.Context, username string) ([]int, error)
}

// ContributionScraper reads contribution levels from public profile pages.
type ContributionScraper struct {
	client  *http.Client
	baseURL string
}

// NewContributionScraper creates a scraper for profile pages under baseURL.
func NewContributionScraper(baseURL string) *ContributionScraper {
	if baseURL == "" {
		baseURL = DefaultWebURL
	}
	return &ContributionScraper{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
	}
}

// FetchLevels returns the contribution levels (0-4) of the last 30 calendar
// days. A profile page that cannot be loaded yields no levels and no error.
func (s *ContributionScraper) FetchLevels(ctx context.Context, username string) ([]int, error) {
	profileURL := s.baseURL + "/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("profile page unavailable", "username", username, "status", resp.StatusCode)
		return []int{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse profile page: %w", err)
	}

	levels := make([]int, 0, contributionDays)
	doc.Find("td.ContributionCalendar-day, rect.ContributionCalendar-day").Each(func(_ int, day *goquery.Selection) {
		raw, ok := day.Attr("data-level")
		if !ok {
			return
		}
		level, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		levels = append(levels, level)
	})

	if len(levels) > contributionDays {
		levels = levels[len(levels)-contributionDays:]
	}
	return levels, nil
}
