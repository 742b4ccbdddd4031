// Package chart builds the chart configurations embedded in result pages.
//
// The bar chart is rendered client side: the server produces a declarative
// configuration object which the page script hands to the charting library
// constructor together with the target element.
package chart

import (
	"encoding/json"
	"fmt"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// ElementID is the id of the canvas element the bar chart is drawn into.
const ElementID = "barChart"

// TypeBar is the chart kind used for the skill comparison.
const TypeBar = "bar"

// Labels of the skill comparison, in series order.
const (
	LabelResumeSkills = "Resume Skills"
	LabelGitHubSkills = "GitHub Skills"
)

// Input holds the two counts substituted into the bar chart.
type Input struct {
	ResumeCount int
	GitHubCount int
}

// NewInput validates the counts and returns an Input.
func NewInput(resumeCount, githubCount int) (Input, error) {
	if resumeCount < 0 || githubCount < 0 {
		return Input{}, fmt.Errorf("%w: resume=%d github=%d", domain.ErrNegativeCount, resumeCount, githubCount)
	}
	return Input{ResumeCount: resumeCount, GitHubCount: githubCount}, nil
}

// InputFor derives the chart input from a stored verification result.
func InputFor(result *domain.VerificationResult) Input {
	return Input{
		ResumeCount: len(result.ResumeSkills),
		GitHubCount: len(result.GitHubLanguages),
	}
}

// Config is the configuration object passed to the charting library.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the labels and the data series of a chart.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single numeric series; values line up with Data.Labels.
type Dataset struct {
	Data []int `json:"data"`
}

// Options controls layout of the rendered chart.
type Options struct {
	Responsive          bool `json:"responsive"`
	MaintainAspectRatio bool `json:"maintainAspectRatio"`
}

// Bar returns the skill comparison bar chart for in.
func Bar(in Input) Config {
	return Config{
		Type: TypeBar,
		Data: Data{
			Labels: []string{LabelResumeSkills, LabelGitHubSkills},
			Datasets: []Dataset{
				{Data: []int{in.ResumeCount, in.GitHubCount}},
			},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: false,
		},
	}
}

// JSON encodes the configuration.
func (c Config) JSON() ([]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal chart config: %w", err)
	}
	return b, nil
}

// Binding ties a chart configuration to the page element it renders into.
type Binding struct {
	ElementID string
	Config    Config
}

// NewBinding returns the bar chart binding for in.
func NewBinding(in Input) Binding {
	return Binding{
		ElementID: ElementID,
		Config:    Bar(in),
	}
}
