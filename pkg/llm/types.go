package llm

// UnknownCompany is the placeholder used when extraction cannot determine a company.
const UnknownCompany = "Unknown Company"

// UnknownPosition is the placeholder used when extraction cannot determine a position.
const UnknownPosition = "Unknown Position"

// TailorRequest represents a single tailoring request. All fields are
// consumed atomically: the request is immutable once built.
type TailorRequest struct {
	Template       string `json:"template"`
	JobDescription string `json:"job_description"`
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
}

// TailorResult represents the outcome of a tailoring call. Output carries the
// client's diagnostic transcript, including the machine-parsable
// "Extracted Company:" / "Extracted Position:" lines when extraction ran.
type TailorResult struct {
	Content  string `json:"content"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Output   string `json:"output,omitempty"`
}

// extraction is the JSON shape requested from the extraction prompt.
type extraction struct {
	Company  string `json:"company"`
	Position string `json:"position"`
}
