package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kindling-dev/kindling/internal/logging"
	"github.com/kindling-dev/kindling/internal/setup"
)

var (
	setupRoot    string
	setupKeep    bool
	setupSkipGit bool
)

// setupCmd personalizes a fresh template checkout. It is a one-shot
// command: on success it removes its own source file along with the
// other template-only artifacts, so a personalized project no longer
// carries it.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Personalize this template checkout (one-shot)",
	Long: `Setup walks you through personalizing a fresh kindling checkout:

  1. Prompts for a project name (validated), description, and author
  2. Updates project.yml with your answers
  3. Regenerates README.md for your project
  4. Removes template-only artifacts, including this command
  5. Resets git history to a single initial commit

Blank answers to the optional prompts leave the existing descriptor
values unchanged. Run it once, right after cloning the template.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := setup.NewService(setup.Options{
			Root:       setupRoot,
			Input:      os.Stdin,
			Output:     os.Stdout,
			RemoveSelf: !setupKeep,
			SkipGit:    setupSkipGit,
		}, logging.NewLogger(nil))
		return svc.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringVar(&setupRoot, "root", ".", "project root to personalize")
	setupCmd.Flags().BoolVar(&setupKeep, "keep-setup", false, "keep the setup command source instead of removing it")
	setupCmd.Flags().BoolVar(&setupSkipGit, "skip-git", false, "skip resetting git history")
}
