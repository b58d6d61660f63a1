package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedBlockPattern   = regexp.MustCompile("(?s)```(?:latex|json)?\\s*(.*?)```")
	embeddedJSONPattern  = regexp.MustCompile(`(?s)\{[^{}]*"company"[^{}]*"position"[^{}]*\}`)
	companyFieldPattern  = regexp.MustCompile(`(?i)"?company"?\s*:\s*"([^"]+)"`)
	positionFieldPattern = regexp.MustCompile(`(?i)"?position"?\s*:\s*"([^"]+)"`)
)

// stripCodeFences removes markdown code fences the model sometimes wraps its
// output in, returning the inner content.
func stripCodeFences(text string) (cleaned string) {
	cleaned = text

	if !strings.Contains(cleaned, "```") {
		cleaned = strings.TrimSpace(cleaned)
		return cleaned
	}

	match := fencedBlockPattern.FindStringSubmatch(cleaned)
	if match != nil {
		cleaned = strings.TrimSpace(match[1])
		return cleaned
	}

	// Unbalanced fences - strip the markers themselves.
	cleaned = strings.ReplaceAll(cleaned, "```latex", "")
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// parseExtraction pulls {company, position} out of a model response, trying
// progressively more tolerant strategies: the whole cleaned response as JSON,
// a JSON object embedded in surrounding prose, then bare key/value regexes.
// It never fails: unmatchable responses yield the Unknown placeholders.
func parseExtraction(text string) (company, position string) {
	company = UnknownCompany
	position = UnknownPosition

	cleaned := stripCodeFences(text)

	var parsed extraction
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		if parsed.Company != "" {
			company = parsed.Company
		}
		if parsed.Position != "" {
			position = parsed.Position
		}
		return company, position
	}

	if match := embeddedJSONPattern.FindString(text); match != "" {
		if err := json.Unmarshal([]byte(match), &parsed); err == nil {
			if parsed.Company != "" {
				company = parsed.Company
			}
			if parsed.Position != "" {
				position = parsed.Position
			}
			return company, position
		}
	}

	if match := companyFieldPattern.FindStringSubmatch(text); match != nil {
		company = match[1]
	}

	if match := positionFieldPattern.FindStringSubmatch(text); match != nil {
		position = match[1]
	}

	return company, position
}
