package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/config"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/jd"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/llm"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/template"
	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/workflow"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templateFile string

//nolint:gochecknoglobals // Cobra boilerplate
var company string

//nolint:gochecknoglobals // Cobra boilerplate
var position string

//nolint:gochecknoglobals // Cobra boilerplate
var apiKey string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var deleteTex bool

//nolint:gochecknoglobals // Cobra boilerplate
var noOpen bool

//nolint:gochecknoglobals // Cobra boilerplate
var skipPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var tailorCmd = &cobra.Command{
	Use:   "tailor <jd-file-or-url>",
	Short: "Tailor a LaTeX resume to a job description",
	Long: `Tailor a LaTeX resume template to a job description.

The job description can be provided as:
- A file path (e.g., jd.txt)
- A URL (e.g., https://example.com/jobs/123)

Company and position are extracted from the job description when not
provided. The output is named <Company>-<Position>-<YYYYMMDD>.tex (or
AutoTailoredResume-<YYYYMMDD>.tex when neither is known), compiled twice
with pdflatex, and opened with the default viewer.

Example:
  resume-tailor tailor jd.txt --template resume.tex
  resume-tailor tailor jd.txt --company "Acme Corp" --position "Staff Engineer"
  resume-tailor tailor jd.txt --delete-tex`,
	Args: cobra.ExactArgs(1),
	RunE: runTailor,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tailorCmd)
	tailorCmd.Flags().StringVarP(&templateFile, "template", "t", "", "Path to the LaTeX resume template (default from config)")
	tailorCmd.Flags().StringVar(&company, "company", "", "Company name (extracted from JD if not provided)")
	tailorCmd.Flags().StringVar(&position, "position", "", "Position name (extracted from JD if not provided)")
	tailorCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (default from GEMINI_API_KEY or config)")
	tailorCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	tailorCmd.Flags().BoolVar(&deleteTex, "delete-tex", false, "Delete the .tex source after successful compilation")
	tailorCmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the compiled PDF")
	tailorCmd.Flags().BoolVar(&skipPDF, "skip-pdf", false, "Stop after writing the .tex source (skip compilation)")
}

func runTailor(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	// Load inputs; missing files are fatal before anything is written
	var jobDescription string
	jobDescription, err = jd.Load(args[0])
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Job description loaded (%d characters)\n", len(jobDescription))
	}

	templatePath := templateFile
	if templatePath == "" {
		templatePath = cfg.Defaults.TemplatePath
	}
	if templatePath == "" {
		err = errors.New("no resume template given (use --template or set defaults.template_path in config)")
		return err
	}

	var templateContent string
	templateContent, err = template.Load(templatePath)
	if err != nil {
		return err
	}

	annotated := template.Annotate(templateContent)

	run := workflow.NewRun()
	client := setupClient(ctx, run, cfg)
	if client != nil {
		defer client.Close()
	}

	opts := pipelineOptions{
		annotated:      annotated,
		jobDescription: jobDescription,
		company:        company,
		position:       position,
		outputDir:      resolveOutputDir(cfg),
		compiler:       cfg.GetCompiler(),
		deleteTex:      deleteTex,
		openPDF:        !noOpen,
		skipPDF:        skipPDF,
		now:            time.Now(),
		progress:       spinnerProgress(),
	}

	var tailorClient tailorer
	if client != nil {
		tailorClient = client
	}

	_, err = runPipeline(ctx, run, tailorClient, opts)
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Run finished in state %s\n", run.State())
	}

	return err
}

// setupClient resolves the API key and constructs the Gemini client. Any
// failure here is recoverable: the run is marked failed and the pipeline
// falls back to the annotated template.
func setupClient(ctx context.Context, run *workflow.Run, cfg config.Config) (client *llm.Client) {
	key, err := cfg.ResolveAPIKey(apiKey, promptForValue)
	if err != nil {
		run.MarkFailed(err.Error())
		return client
	}

	client, err = llm.NewClient(ctx, key, cfg.GetTailoringModel(), cfg.GetExtractionModel(), cfg.Models.Fallbacks)
	if err != nil {
		run.MarkFailed(err.Error())
		client = nil
		return client
	}

	return client
}

// resolveOutputDir returns the output directory from flag or config.
func resolveOutputDir(cfg config.Config) (dir string) {
	dir = outputDir
	if dir == "" {
		dir = cfg.Defaults.OutputDir
	}
	if dir == "" {
		dir = "."
	}
	return dir
}

// promptForValue asks the user for a value on stdin.
func promptForValue(field string) (value string, err error) {
	fmt.Printf("%s not found.\n", field)
	fmt.Printf("Please enter %s: ", strings.ToLower(field))

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		value = strings.TrimSpace(scanner.Text())
	}

	if scanner.Err() != nil {
		err = errors.Wrap(scanner.Err(), "failed to read value from stdin")
		return value, err
	}

	return value, err
}

// spinnerProgress returns a progress function backed by the terminal
// spinner, or nil in verbose mode where plain messages are printed instead.
func spinnerProgress() (progress progressFunc) {
	if getVerbose() {
		return progress
	}

	progress = func(message string) (stop func()) {
		s := newSpinner(message)
		s.start()
		stop = s.stopSpinner
		return stop
	}
	return progress
}
