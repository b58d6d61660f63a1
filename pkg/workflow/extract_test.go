package workflow

import (
	"testing"
)

func TestParseExtractionPlainNewlines(t *testing.T) {
	output := "Extracting company and position...\nExtracted Company: Acme\nExtracted Position: Engineer\nDone.\n"

	company, position := ParseExtraction(output)
	if company != "Acme" {
		t.Errorf("Expected company 'Acme', got '%s'", company)
	}
	if position != "Engineer" {
		t.Errorf("Expected position 'Engineer', got '%s'", position)
	}
}

func TestParseExtractionEscapedNewlines(t *testing.T) {
	// Transcript passed through an escaping layer: line endings are the
	// two characters backslash and n.
	output := `Extracted Company: Acme Corp\nExtracted Position: Staff Engineer\nDone.`

	company, position := ParseExtraction(output)
	if company != "Acme Corp" {
		t.Errorf("Expected company 'Acme Corp', got '%s'", company)
	}
	if position != "Staff Engineer" {
		t.Errorf("Expected position 'Staff Engineer', got '%s'", position)
	}
}

func TestParseExtractionCarriageReturns(t *testing.T) {
	output := "Extracted Company: Acme\r\nExtracted Position: Engineer\r\n"

	company, position := ParseExtraction(output)
	if company != "Acme" {
		t.Errorf("Expected company 'Acme', got '%s'", company)
	}
	if position != "Engineer" {
		t.Errorf("Expected position 'Engineer', got '%s'", position)
	}
}

func TestParseExtractionMissing(t *testing.T) {
	output := "Tailoring completed without extraction.\n"

	company, position := ParseExtraction(output)
	if company != "" {
		t.Errorf("Expected empty company on miss, got '%s'", company)
	}
	if position != "" {
		t.Errorf("Expected empty position on miss, got '%s'", position)
	}
}

func TestParseExtractionPartial(t *testing.T) {
	output := "Extracted Company: Acme\nno position line here\n"

	company, position := ParseExtraction(output)
	if company != "Acme" {
		t.Errorf("Expected company 'Acme', got '%s'", company)
	}
	if position != "" {
		t.Errorf("Expected empty position, got '%s'", position)
	}
}

func TestParseSavedPath(t *testing.T) {
	output := "Tailored resume successfully saved to: /tmp/Acme-Engineer-20250314.tex\n"

	path := ParseSavedPath(output)
	if path != "/tmp/Acme-Engineer-20250314.tex" {
		t.Errorf("Expected saved path, got '%s'", path)
	}
}

func TestParseSavedPathMissing(t *testing.T) {
	path := ParseSavedPath("nothing useful here")
	if path != "" {
		t.Errorf("Expected empty path on miss, got '%s'", path)
	}
}
