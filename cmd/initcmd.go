package cmd

import (
	"fmt"

	"github.com/SaddamSheikh/AI-Resume-Tailoring-System/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file at $HOME/.resume-tailor/config.json
(or the path given with --config) with placeholder values to fill in.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to initialize config")
		return err
	}

	fmt.Println("Config file created. Set gemini_api_key (or the GEMINI_API_KEY env var) before tailoring.")

	return err
}
