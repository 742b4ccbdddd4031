package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// ReportTitle is the heading of generated PDF reports.
const ReportTitle = "Resume Verification Report"

// ReportLines returns the body lines printed in the PDF report of result.
func ReportLines(result *domain.VerificationResult) []string {
	return []string{
		fmt.Sprintf("Score: %d%%", result.Score),
		"Status: " + result.Status.Label(),
		"GitHub profile: " + result.GitHubProfile,
		"Resume: " + result.ResumeFilename,
		"Resume skills: " + joinOrNone(result.ResumeSkills),
		"GitHub languages: " + joinOrNone(result.GitHubLanguages),
		"Matched skills: " + joinOrNone(result.MatchedSkills),
		fmt.Sprintf("Repositories: %d (%d source, %d forks)", result.RepoCount, result.SourceRepoCount, result.ForkRepoCount),
		"Checked at: " + result.CreatedAt.UTC().Format("2006-01-02 15:04 MST"),
	}
}

// WriteReport renders an A4 PDF report of result to w.
func WriteReport(w io.Writer, result *domain.VerificationResult) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ReportTitle, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, ReportTitle)
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range ReportLines(result) {
		pdf.MultiCell(0, 8, line, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
