// Package workflow holds the run-level orchestration state for resume
// tailoring: the AI fallback state machine, output file naming, and parsing
// of the tailoring client's diagnostic transcript.
package workflow

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// State represents the AI tailoring state of a run.
type State int

// Run states. Every run starts at StateAIRequested; failures land at
// StateTemplateOnly after the annotated template has been written verbatim.
const (
	StateAIRequested State = iota
	StateAISucceeded
	StateAIFailed
	StateTemplateOnly
)

// String returns the state name.
func (s State) String() (name string) {
	switch s {
	case StateAIRequested:
		name = "AI_REQUESTED"
	case StateAISucceeded:
		name = "AI_SUCCEEDED"
	case StateAIFailed:
		name = "AI_FAILED"
	case StateTemplateOnly:
		name = "TEMPLATE_ONLY"
	default:
		name = "UNKNOWN"
	}
	return name
}

// Run tracks the fallback state machine for a single tailoring run.
type Run struct {
	state  State
	reason string
}

// NewRun creates a run in the initial state.
func NewRun() (r *Run) {
	r = &Run{state: StateAIRequested}
	return r
}

// State returns the current state.
func (r *Run) State() (state State) {
	state = r.state
	return state
}

// Reason returns the recorded failure reason, empty on the success path.
func (r *Run) Reason() (reason string) {
	reason = r.reason
	return reason
}

// MarkSucceeded records a successful AI tailoring call.
func (r *Run) MarkSucceeded() {
	r.state = StateAISucceeded
}

// MarkFailed records an AI failure with a human-readable reason. Failure is
// never terminal for the run: the caller degrades to template-only output.
func (r *Run) MarkFailed(reason string) {
	r.state = StateAIFailed
	r.reason = reason
}

// MarkTemplateOnly records that the annotated template was written verbatim
// as the terminal recovery action.
func (r *Run) MarkTemplateOnly() {
	r.state = StateTemplateOnly
}

// UsedAI reports whether the run's output came from the AI client.
func (r *Run) UsedAI() (used bool) {
	used = r.state == StateAISucceeded
	return used
}

// Rename moves an already-written document to its final name. The file is
// copied and the original removed rather than regenerated, so the content
// written earlier in the run is preserved byte for byte.
func Rename(oldPath, newPath string) (finalPath string, err error) {
	if oldPath == newPath {
		finalPath = oldPath
		return finalPath, err
	}

	var src *os.File
	src, err = os.Open(oldPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to open written document: %s", oldPath)
		return finalPath, err
	}
	defer src.Close()

	var dst *os.File
	dst, err = os.OpenFile(newPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to create renamed document: %s", newPath)
		return finalPath, err
	}

	_, err = io.Copy(dst, src)
	closeErr := dst.Close()
	if err != nil {
		err = errors.Wrapf(err, "failed to copy document to: %s", newPath)
		return finalPath, err
	}
	if closeErr != nil {
		err = errors.Wrapf(closeErr, "failed to flush renamed document: %s", newPath)
		return finalPath, err
	}

	err = os.Remove(oldPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to remove original document: %s", oldPath)
		return finalPath, err
	}

	finalPath = newPath
	return finalPath, err
}
