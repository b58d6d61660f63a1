package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/artifact"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/latex"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/llm"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/workflow"
	"github.com/pkg/errors"
)

// tailorer abstracts the AI client so the pipeline can run without one.
type tailorer interface {
	Tailor(ctx context.Context, req llm.TailorRequest) (result llm.TailorResult, err error)
}

// progressFunc starts a progress indicator and returns a stop function. Nil
// disables progress display.
type progressFunc func(message string) (stop func())

// pipelineOptions carries everything the tailoring pipeline needs for one run.
type pipelineOptions struct {
	annotated      string
	jobDescription string
	company        string
	position       string
	outputDir      string
	compiler       string
	deleteTex      bool
	openPDF        bool
	skipPDF        bool
	now            time.Time
	progress       progressFunc
}

// runPipeline executes the tailoring workflow: obtain content (AI or
// fallback), write the source document under its derived name, rename it if
// late extraction improves the name, compile, and finalize. The returned
// path is the single final source document for the run.
func runPipeline(ctx context.Context, run *workflow.Run, client tailorer, opts pipelineOptions) (texPath string, err error) {
	content, result := obtainContent(ctx, run, client, opts)

	// Write the source document under the guessed name
	err = os.MkdirAll(opts.outputDir, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", opts.outputDir)
		return texPath, err
	}

	guessedName := workflow.OutputName(opts.company, opts.position, opts.now)
	texPath = filepath.Join(opts.outputDir, guessedName)

	err = os.WriteFile(texPath, []byte(content), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write source document: %s", texPath)
		return texPath, err
	}

	texPath = finalizeName(run, result, texPath, opts)

	fmt.Printf("Tailored resume successfully saved to: %s\n", texPath)

	if opts.skipPDF {
		return texPath, err
	}

	err = compileAndFinalize(texPath, opts)
	if err != nil {
		return texPath, err
	}

	return texPath, err
}

// obtainContent runs the AI tailoring call, degrading to the annotated
// template on any failure. This is the terminal recovery action: a run never
// aborts because the AI was unavailable.
func obtainContent(ctx context.Context, run *workflow.Run, client tailorer, opts pipelineOptions) (content string, result llm.TailorResult) {
	content = opts.annotated

	if client == nil {
		// Failure reason was recorded by the caller during setup
		run.MarkTemplateOnly()
		fmt.Printf("Warning: AI tailoring unavailable (%s), using annotated template\n", run.Reason())
		return content, result
	}

	var stop func()
	if opts.progress != nil {
		stop = opts.progress("Tailoring resume with Gemini...")
	} else if getVerbose() {
		fmt.Println("Tailoring resume with Gemini...")
	}

	var err error
	result, err = client.Tailor(ctx, llm.TailorRequest{
		Template:       opts.annotated,
		JobDescription: opts.jobDescription,
		Company:        opts.company,
		Position:       opts.position,
	})

	if stop != nil {
		stop()
	}

	if getVerbose() && result.Output != "" {
		fmt.Print(result.Output)
	}

	if err != nil {
		run.MarkFailed(err.Error())
		run.MarkTemplateOnly()
		fmt.Printf("Warning: AI tailoring failed (%v), using annotated template\n", err)
		return content, result
	}

	run.MarkSucceeded()
	content = result.Content

	return content, result
}

// finalizeName renames the written document when extraction produced names
// that were not available when the filename was first guessed. The already
// written file is moved, never regenerated; a rename failure keeps the
// guessed name and the run continues.
func finalizeName(run *workflow.Run, result llm.TailorResult, texPath string, opts pipelineOptions) (finalPath string) {
	finalPath = texPath

	// Extraction only populates the filename when no hints were supplied
	if !run.UsedAI() || opts.company != "" || opts.position != "" {
		return finalPath
	}

	extractedCompany, extractedPosition := workflow.ParseExtraction(result.Output)
	if extractedCompany == llm.UnknownCompany {
		extractedCompany = ""
	}
	if extractedPosition == llm.UnknownPosition {
		extractedPosition = ""
	}

	if extractedCompany == "" && extractedPosition == "" {
		return finalPath
	}

	newName := workflow.OutputName(extractedCompany, extractedPosition, opts.now)
	newPath := filepath.Join(opts.outputDir, newName)
	if newPath == texPath {
		return finalPath
	}

	renamed, err := workflow.Rename(texPath, newPath)
	if err != nil {
		fmt.Printf("Warning: failed to rename document (%v), keeping %s\n", err, texPath)
		return finalPath
	}

	finalPath = renamed
	return finalPath
}

// compileAndFinalize compiles the source document and, when a PDF was
// produced, opens it and removes the compiler byproducts.
func compileAndFinalize(texPath string, opts pipelineOptions) (err error) {
	var result latex.Result
	result, err = latex.Compile(texPath, opts.compiler)
	if err != nil {
		err = errors.Wrap(err, "compilation failed")
		return err
	}

	if result.ExitErr != nil && getVerbose() {
		fmt.Printf("Compiler exited non-zero on final pass: %v\n", result.ExitErr)
	}

	pdfPath := artifact.PDFPath(texPath)
	if !artifact.Exists(pdfPath) {
		fmt.Printf("Warning: no PDF was produced; compiler output follows\n%s\n", result.Output)
		fmt.Printf("Source document kept at: %s\n", texPath)
		return err
	}

	fmt.Printf("Compiled PDF saved at: %s\n", pdfPath)

	if opts.openPDF {
		openErr := artifact.Open(pdfPath)
		if openErr != nil {
			fmt.Printf("Warning: %v\n", openErr)
		}
	}

	removed, warnings := artifact.Cleanup(texPath, opts.deleteTex)
	for _, warning := range warnings {
		fmt.Printf("Warning: %s\n", warning)
	}

	if getVerbose() {
		for _, path := range removed {
			fmt.Printf("Removed %s\n", path)
		}
	}

	return err
}
