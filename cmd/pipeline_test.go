package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/llm"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/workflow"
	"github.com/pkg/errors"
)

// stubTailorer stands in for the Gemini client.
type stubTailorer struct {
	result llm.TailorResult
	err    error
}

func (s *stubTailorer) Tailor(ctx context.Context, req llm.TailorRequest) (result llm.TailorResult, err error) {
	result = s.result
	err = s.err
	return result, err
}

func testOpts(t *testing.T) (opts pipelineOptions) {
	t.Helper()
	opts = pipelineOptions{
		annotated:      "% annotated\n\\documentclass{article}\n\\begin{document}x\\end{document}\n",
		jobDescription: "Engineer wanted at Acme.",
		outputDir:      t.TempDir(),
		skipPDF:        true,
		now:            time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	return opts
}

func TestRunPipelineNoClientWritesAnnotatedTemplate(t *testing.T) {
	opts := testOpts(t)
	run := workflow.NewRun()
	run.MarkFailed("no API key available")

	texPath, err := runPipeline(context.Background(), run, nil, opts)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	if run.State() != workflow.StateTemplateOnly {
		t.Errorf("Expected TEMPLATE_ONLY, got %s", run.State())
	}

	// The fallback output must be textually identical to the annotated template.
	data, err := os.ReadFile(texPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != opts.annotated {
		t.Error("Expected output identical to annotated template on fallback")
	}

	// Without company/position the generic name is used.
	expected := filepath.Join(opts.outputDir, "AutoTailoredResume-20250314.tex")
	if texPath != expected {
		t.Errorf("Expected %s, got %s", expected, texPath)
	}
}

func TestRunPipelineAIFailureWritesAnnotatedTemplate(t *testing.T) {
	opts := testOpts(t)
	run := workflow.NewRun()

	client := &stubTailorer{err: errors.New("quota exhausted")}

	texPath, err := runPipeline(context.Background(), run, client, opts)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	if run.State() != workflow.StateTemplateOnly {
		t.Errorf("Expected TEMPLATE_ONLY, got %s", run.State())
	}

	data, err := os.ReadFile(texPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != opts.annotated {
		t.Error("Expected output identical to annotated template on AI failure")
	}
}

func TestRunPipelineExtractionNamesOutput(t *testing.T) {
	opts := testOpts(t)
	run := workflow.NewRun()

	client := &stubTailorer{
		result: llm.TailorResult{
			Content:  "tailored content",
			Company:  "Acme",
			Position: "Engineer",
			Output:   "Extracted Company: Acme\nExtracted Position: Engineer\n",
		},
	}

	texPath, err := runPipeline(context.Background(), run, client, opts)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	if !run.UsedAI() {
		t.Error("Expected AI_SUCCEEDED state")
	}

	expected := filepath.Join(opts.outputDir, "Acme-Engineer-20250314.tex")
	if texPath != expected {
		t.Errorf("Expected %s, got %s", expected, texPath)
	}

	data, err := os.ReadFile(texPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "tailored content" {
		t.Errorf("Expected tailored content, got '%s'", string(data))
	}

	// Exactly one final document exists.
	generic := filepath.Join(opts.outputDir, "AutoTailoredResume-20250314.tex")
	if _, statErr := os.Stat(generic); !os.IsNotExist(statErr) {
		t.Error("Expected generically named file to be renamed away")
	}
}

func TestRunPipelineHintsSuppressExtractionRename(t *testing.T) {
	opts := testOpts(t)
	opts.company = "Initech"
	opts.position = "Auditor"
	run := workflow.NewRun()

	client := &stubTailorer{
		result: llm.TailorResult{
			Content: "tailored content",
			// Extraction lines must not override supplied hints.
			Output: "Extracted Company: Acme\nExtracted Position: Engineer\n",
		},
	}

	texPath, err := runPipeline(context.Background(), run, client, opts)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	expected := filepath.Join(opts.outputDir, "Initech-Auditor-20250314.tex")
	if texPath != expected {
		t.Errorf("Expected %s, got %s", expected, texPath)
	}
}

func TestRunPipelineUnknownExtractionKeepsGenericName(t *testing.T) {
	opts := testOpts(t)
	run := workflow.NewRun()

	client := &stubTailorer{
		result: llm.TailorResult{
			Content: "tailored content",
			Output:  "Extracted Company: Unknown Company\nExtracted Position: Unknown Position\n",
		},
	}

	texPath, err := runPipeline(context.Background(), run, client, opts)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	expected := filepath.Join(opts.outputDir, "AutoTailoredResume-20250314.tex")
	if texPath != expected {
		t.Errorf("Expected generic name for unknown extraction, got %s", texPath)
	}
}

func TestRunPipelineSanitizesExtractedNames(t *testing.T) {
	opts := testOpts(t)
	run := workflow.NewRun()

	client := &stubTailorer{
		result: llm.TailorResult{
			Content: "tailored content",
			Output:  "Extracted Company: Acme Corp\nExtracted Position: Senior Engineer\n",
		},
	}

	texPath, err := runPipeline(context.Background(), run, client, opts)
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	expected := filepath.Join(opts.outputDir, "Acme_Corp-Senior_Engineer-20250314.tex")
	if texPath != expected {
		t.Errorf("Expected sanitized name %s, got %s", expected, texPath)
	}
}
