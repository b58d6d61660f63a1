package template

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// anchor is the LaTeX declaration the guidance block is inserted after.
const anchor = `\documentclass`

// guidanceComment is the fixed tailoring-guidance block injected into every
// template. The orchestration treats the template as opaque text apart from
// this one insertion point.
const guidanceComment = `% ============================================================
% AUTO-TAILORED RESUME
% This document was prepared by the resume tailoring pipeline.
% Guidance applied during tailoring:
%   - Mirror the job description's terminology in the summary,
%     skills, and experience sections.
%   - Keep every LaTeX command and environment intact.
%   - Escape special characters (%, $, #, &) in generated text.
%   - Quantify achievements where the source material allows.
% ============================================================`

// Load reads the resume template. A missing template is fatal to the run.
func Load(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("resume template not found: %s", path)
			return content, err
		}
		err = errors.Wrapf(err, "failed to read resume template: %s", path)
		return content, err
	}

	content = string(data)
	if strings.TrimSpace(content) == "" {
		err = errors.Errorf("resume template is empty: %s", path)
		return content, err
	}

	return content, err
}

// Annotate inserts the guidance comment immediately after the first line
// containing the document-class declaration. Templates without the anchor get
// the block prepended instead. Not idempotent: annotating an already
// annotated document inserts a second block.
func Annotate(content string) (annotated string) {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if strings.Contains(line, anchor) {
			result := make([]string, 0, len(lines)+1)
			result = append(result, lines[:i+1]...)
			result = append(result, guidanceComment)
			result = append(result, lines[i+1:]...)
			annotated = strings.Join(result, "\n")
			return annotated
		}
	}

	// No anchor found - prepend so the guidance is still present.
	annotated = guidanceComment + "\n" + content
	return annotated
}

// GuidanceComment returns the fixed guidance block, exposed for verification.
func GuidanceComment() (comment string) {
	comment = guidanceComment
	return comment
}
