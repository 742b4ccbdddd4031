package chart_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/profilecheck/internal/chart"
	"github.com/mtlprog/profilecheck/internal/domain"
)

func TestNewInput(t *testing.T) {
	testCases := []struct {
		name        string
		resume      int
		github      int
		expectError bool
	}{
		{name: "positive counts", resume: 5, github: 3},
		{name: "zero counts", resume: 0, github: 0},
		{name: "negative resume count", resume: -1, github: 3, expectError: true},
		{name: "negative github count", resume: 2, github: -4, expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := chart.NewInput(tc.resume, tc.github)
			if tc.expectError {
				assert.ErrorIs(t, err, domain.ErrNegativeCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.resume, in.ResumeCount)
			assert.Equal(t, tc.github, in.GitHubCount)
		})
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		name     string
		in       chart.Input
		expected []int
	}{
		{name: "five and three", in: chart.Input{ResumeCount: 5, GitHubCount: 3}, expected: []int{5, 3}},
		{name: "both zero", in: chart.Input{}, expected: []int{0, 0}},
		{name: "github larger", in: chart.Input{ResumeCount: 1, GitHubCount: 12}, expected: []int{1, 12}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := chart.Bar(tc.in)

			assert.Equal(t, "bar", cfg.Type)
			assert.Equal(t, []string{"Resume Skills", "GitHub Skills"}, cfg.Data.Labels)
			require.Len(t, cfg.Data.Datasets, 1)
			assert.Equal(t, tc.expected, cfg.Data.Datasets[0].Data)
			assert.Len(t, cfg.Data.Datasets[0].Data, len(cfg.Data.Labels))
			assert.True(t, cfg.Options.Responsive)
			assert.False(t, cfg.Options.MaintainAspectRatio)
		})
	}
}

func TestConfigJSON_Shape(t *testing.T) {
	b, err := chart.Bar(chart.Input{ResumeCount: 5, GitHubCount: 3}).JSON()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "bar",
		"data": {
			"labels": ["Resume Skills", "GitHub Skills"],
			"datasets": [{"data": [5, 3]}]
		},
		"options": {"responsive": true, "maintainAspectRatio": false}
	}`, string(b))
}

func TestConfigJSON_Idempotent(t *testing.T) {
	in := chart.Input{ResumeCount: 7, GitHubCount: 2}

	first, err := chart.Bar(in).JSON()
	require.NoError(t, err)
	second, err := chart.Bar(in).JSON()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInputFor(t *testing.T) {
	result := &domain.VerificationResult{
		ResumeSkills:    []string{"css", "html", "python"},
		GitHubLanguages: []string{"go"},
	}

	assert.Equal(t, chart.Input{ResumeCount: 3, GitHubCount: 1}, chart.InputFor(result))
}

func TestNewBinding_TargetsBarChart(t *testing.T) {
	b := chart.NewBinding(chart.Input{ResumeCount: 1, GitHubCount: 1})
	assert.Equal(t, "barChart", b.ElementID)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := chart.Render(&buf, chart.NewBinding(chart.Input{ResumeCount: 5, GitHubCount: 3}))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `id="barChart"`))
	assert.Contains(t, out, `document.getElementById("barChart")`)

	// Pull the config literal back out of the script and decode it.
	start := strings.Index(out, `"barChart"), `)
	require.NotEqual(t, -1, start)
	literal := out[start+len(`"barChart"), `):]
	literal = literal[:strings.LastIndex(literal, ");")]

	var cfg chart.Config
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(literal)), &cfg))
	assert.Equal(t, chart.Bar(chart.Input{ResumeCount: 5, GitHubCount: 3}), cfg)
}

func TestRenderActivity(t *testing.T) {
	var buf bytes.Buffer
	err := chart.RenderActivity(&buf, "octocat", []int{0, 1, 4, 2})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Contribution activity")
	assert.Contains(t, out, "Contribution level")
	assert.Contains(t, out, "octocat")
}
