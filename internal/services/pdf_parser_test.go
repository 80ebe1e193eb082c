package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExtractText(t *testing.T) {
	parser := NewPDFParserService()

	content, err := parser.ExtractText(openFixture(t, "resume.pdf"))
	require.NoError(t, err)

	assert.Equal(t, 1, content.PageCount)
	assert.Equal(t, "Jane Doe\nData Analyst with SQL and Tableau", content.Text)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText(openFixture(t, "blank.pdf"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText(strings.NewReader("Experienced data analyst with SQL"))
	assert.ErrorContains(t, err, "not a PDF")
}

func TestExtractTextRejectsBrokenPDF(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText(strings.NewReader("%PDF-1.4\nthis is not a real document"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	in := "  Jane Doe \n\n\n  Data Analyst\t\n SQL, Tableau  \n"
	assert.Equal(t, "Jane Doe\nData Analyst\nSQL, Tableau", CleanText(in))
	assert.Equal(t, "", CleanText(" \n \n"))
}
