// Package resume pulls known technical skills out of uploaded resumes.
package resume

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// SkillsList is the fixed set of skills looked for in resume text.
var SkillsList = []string{"python", "java", "javascript", "html", "css", "sql", "flask", "django"}

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(r io.ReaderAt, size int64) (string, error)
}

// PDFExtractor extracts the plain text of every page of a PDF document.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText implements TextExtractor.
func (e *PDFExtractor) ExtractText(r io.ReaderAt, size int64) (text string, err error) {
	// The pdf package panics on some malformed documents.
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("%w: %v", domain.ErrInvalidResume, p)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidResume, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidResume, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read resume text: %w", err)
	}
	return buf.String(), nil
}

// MatchSkills returns the skills of SkillsList that occur in text.
// Matching is a case-insensitive substring test; the result is sorted.
func MatchSkills(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0, len(SkillsList))
	for _, skill := range SkillsList {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}
