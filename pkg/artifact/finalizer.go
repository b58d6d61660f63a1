// Package artifact locates, opens, and cleans up the files a compilation
// run leaves behind.
package artifact

import (
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// byproductExtensions are the compiler byproducts removed after a successful
// compile: log, aux, cross-reference, and trace files sharing the source's
// base name.
//
//nolint:gochecknoglobals // Fixed byproduct set
var byproductExtensions = []string{
	".aux",
	".log",
	".out",
	".toc",
	".fls",
	".fdb_latexmk",
}

// PDFPath derives the compiled artifact's path from the source document path
// by suffix substitution.
func PDFPath(texPath string) (pdfPath string) {
	pdfPath = strings.TrimSuffix(texPath, ".tex") + ".pdf"
	return pdfPath
}

// Exists reports whether the artifact is present on disk.
func Exists(path string) (present bool) {
	_, err := os.Stat(path)
	present = err == nil
	return present
}

// Open launches the host's default viewer on the artifact. Best-effort: the
// caller logs failures and continues.
func Open(path string) (err error) {
	err = browser.OpenFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open artifact: %s", path)
		return err
	}
	return err
}

// Cleanup removes the compiler byproducts sharing the source document's base
// name and, when requested, the source document itself. Individual removal
// failures never abort the run; they come back as warnings for the caller
// to log.
func Cleanup(texPath string, deleteSource bool) (removed []string, warnings []string) {
	base := strings.TrimSuffix(texPath, ".tex")

	for _, ext := range byproductExtensions {
		path := base + ext

		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}

		err = os.Remove(path)
		if err != nil {
			warnings = append(warnings, errors.Wrapf(err, "failed to remove byproduct: %s", path).Error())
			continue
		}

		removed = append(removed, path)
	}

	if deleteSource {
		err := os.Remove(texPath)
		if err != nil {
			warnings = append(warnings, errors.Wrapf(err, "failed to remove source document: %s", texPath).Error())
		} else {
			removed = append(removed, texPath)
		}
	}

	return removed, warnings
}
