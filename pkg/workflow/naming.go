package workflow

import (
	"strings"
	"time"
)

// GenericBaseName is used when neither company nor position is known.
const GenericBaseName = "AutoTailoredResume"

// DateFormat is the filename date layout.
const DateFormat = "20060102"

// Sanitize prepares a name for use in a filename. Every space becomes an
// underscore; the same transform applies whether the name came from a flag
// or from AI extraction.
func Sanitize(name string) (sanitized string) {
	sanitized = strings.TrimSpace(name)
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	return sanitized
}

// OutputName derives the source document filename from the known company and
// position. Both known: <Company>-<Position>-<YYYYMMDD>.tex. Neither known:
// the generic fallback name. One known: that component alone with the date.
func OutputName(company, position string, date time.Time) (name string) {
	parts := []string{}

	if c := Sanitize(company); c != "" {
		parts = append(parts, c)
	}
	if p := Sanitize(position); p != "" {
		parts = append(parts, p)
	}

	if len(parts) == 0 {
		parts = append(parts, GenericBaseName)
	}

	parts = append(parts, date.Format(DateFormat))

	name = strings.Join(parts, "-") + ".tex"
	return name
}
