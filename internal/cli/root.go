package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hytalemodding/modinit/internal/branding"
	"github.com/hytalemodding/modinit/internal/config"
	"github.com/hytalemodding/modinit/internal/output"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// reportedError marks an error that a command has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a ready-to-build Hytale server plugin project from the
community plugin template: it downloads the template, copies it into your
folder and renames the package, classes and metadata to match your mod.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verbose)
			config.Load()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(NewInitCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewVersionCmd())
	return root
}

// Execute runs the root command with build info injected via ldflags.
// Errors not already shown by a command are logged once here.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := NewRootCmd().Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		output.Error(err.Error())
	}
	return err
}
