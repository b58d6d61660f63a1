package workflow

import (
	"regexp"
	"strings"
)

// The tailoring client's transcript carries machine-parsable extraction
// lines. Two patterns per field: the first matches values terminated by a
// literal backslash-n (transcripts that passed through an escaping layer),
// the second matches ordinary line endings. A miss is not an error; the run
// keeps the originally guessed filename.
var (
	companyLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Extracted Company:\s*(.+?)\\n`),
		regexp.MustCompile(`Extracted Company:\s*([^\r\n]+)`),
	}
	positionLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Extracted Position:\s*(.+?)\\n`),
		regexp.MustCompile(`Extracted Position:\s*([^\r\n]+)`),
	}
	savedPathPattern = regexp.MustCompile(`successfully saved to:\s*([^\r\n]+)`)
)

// ParseExtraction scans a client transcript for extracted company and
// position lines. Unmatched fields come back empty.
func ParseExtraction(output string) (company, position string) {
	company = firstMatch(companyLinePatterns, output)
	position = firstMatch(positionLinePatterns, output)
	return company, position
}

// ParseSavedPath scans a transcript for the final success line naming the
// saved document path. Empty when absent.
func ParseSavedPath(output string) (path string) {
	match := savedPathPattern.FindStringSubmatch(output)
	if match != nil {
		path = strings.TrimSpace(match[1])
	}
	return path
}

func firstMatch(patterns []*regexp.Regexp, output string) (value string) {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(output)
		if match != nil {
			value = strings.TrimSpace(match[1])
			return value
		}
	}
	return value
}
