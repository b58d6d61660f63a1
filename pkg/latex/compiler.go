package latex

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultCompiler is the LaTeX engine used when none is configured.
const DefaultCompiler = "pdflatex"

// passes is the number of compiler invocations per document. The first pass
// may leave unresolved cross-references; the second resolves them.
const passes = 2

// Result reports what the compiler runs did. ExitErr carries the last
// non-zero exit, which is advisory only: the compiler frequently exits
// non-zero while still producing a usable PDF, so success is judged by the
// presence of the output artifact, not by exit status.
type Result struct {
	Passes  int
	Output  string
	ExitErr error
}

// Compile runs the LaTeX compiler on the document twice, in non-interactive
// mode, from the document's directory. The only fatal conditions are a
// missing source file and a missing compiler executable; per-pass failures
// are recorded in the result and compilation continues.
func Compile(texPath, compiler string) (result Result, err error) {
	if compiler == "" {
		compiler = DefaultCompiler
	}

	// Missing source before compilation is fatal to this step
	_, err = os.Stat(texPath)
	if os.IsNotExist(err) {
		err = errors.Errorf("source document not found: %s", texPath)
		return result, err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to stat source document: %s", texPath)
		return result, err
	}

	err = checkCompilerExists(compiler)
	if err != nil {
		return result, err
	}

	dir := filepath.Dir(texPath)
	base := filepath.Base(texPath)

	for pass := 1; pass <= passes; pass++ {
		//nolint:noctx // Context not available for exec.Command - the compiler is a short local subprocess
		cmd := exec.Command(compiler, "-interaction=nonstopmode", base)
		cmd.Dir = dir

		output, runErr := cmd.CombinedOutput()
		result.Passes = pass
		result.Output = string(output)
		result.ExitErr = runErr
	}

	return result, err
}

// checkCompilerExists verifies the LaTeX compiler is installed.
func checkCompilerExists(compiler string) (err error) {
	_, err = exec.LookPath(compiler)
	if err != nil {
		err = errors.Errorf("%s not found in PATH (install a LaTeX distribution to compile PDFs)", compiler)
		return err
	}
	return err
}
