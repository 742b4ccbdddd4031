package resume_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/resume"
)

func TestMatchSkills(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "mixed case skills",
			text:     "Experienced in Python, Django and PostgreSQL (SQL).",
			expected: []string{"django", "python", "sql"},
		},
		{
			name:     "javascript also matches java",
			text:     "Frontend: JavaScript, HTML5, CSS3",
			expected: []string{"css", "html", "java", "javascript"},
		},
		{
			name:     "repeated mentions counted once",
			text:     "flask flask FLASK",
			expected: []string{"flask"},
		},
		{
			name:     "no known skills",
			text:     "Project manager with a focus on delivery.",
			expected: []string{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, resume.MatchSkills(tc.text))
		})
	}
}

func TestPDFExtractor_InvalidDocument(t *testing.T) {
	data := []byte("this is not a pdf")

	_, err := resume.NewPDFExtractor().ExtractText(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidResume)
}
