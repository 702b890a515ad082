package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hytalemodding/modinit/internal/branding"
	"github.com/hytalemodding/modinit/internal/config"
	modErrors "github.com/hytalemodding/modinit/internal/errors"
	"github.com/hytalemodding/modinit/internal/fetcher"
	"github.com/hytalemodding/modinit/internal/initializer"
	"github.com/hytalemodding/modinit/internal/output"
	"github.com/hytalemodding/modinit/internal/prompt"
	"github.com/hytalemodding/modinit/internal/scaffold"
)

type initOptions struct {
	dir         string
	group       string
	name        string
	pkg         string
	mainClass   string
	author      string
	email       string
	url         string
	description string
	yes         bool
	ref         string
	templateURL string
}

// NewInitCmd builds the init command.
func NewInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new Hytale mod from the plugin template",
		Long: `Scaffold a new Hytale mod.

By default you are asked for the target folder, group ID, mod name, Java
package, main class, author details and description; press enter to accept
the value in brackets. Flags pre-fill those answers. With --yes no questions
are asked and unset values fall back to their defaults.

The template is downloaded from ` + branding.TemplateRepo() + ` (branch main)
unless --ref, --template-url or the template.* settings say otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.dir, "dir", "", "Target folder for the mod (default: current directory)")
	f.StringVar(&opts.group, "group", "", "Group ID, e.g. dev.hytalemodding")
	f.StringVar(&opts.name, "name", "", "Mod name")
	f.StringVar(&opts.pkg, "package", "", "Java package name (default: <group>.<name>)")
	f.StringVar(&opts.mainClass, "main-class", "", "Main class name (default: mod name in PascalCase)")
	f.StringVar(&opts.author, "author", "", "Author name")
	f.StringVar(&opts.email, "email", "", "Author email")
	f.StringVar(&opts.url, "url", "", "Author URL")
	f.StringVar(&opts.description, "description", "", "Mod description")
	f.BoolVarP(&opts.yes, "yes", "y", false, "Do not prompt; use flags and defaults")
	f.StringVar(&opts.ref, "ref", "", "Template branch or version tag (overrides template.ref)")
	f.StringVar(&opts.templateURL, "template-url", "", "Template archive URL (overrides template.url)")
	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	src, err := templateSource(opts)
	if err != nil {
		return err
	}

	runner := &initializer.Runner{
		Input:    inputSource(cmd, opts, wd),
		Progress: output.NewSpinnerProgress(output.Logger),
		Fetcher: fetcher.New(
			fetcher.WithUserAgent(userAgent()),
			fetcher.WithMaxRedirects(config.MaxRedirects()),
			fetcher.WithLogger(output.Logger),
		),
		Source:  src,
		Exclude: config.CopyExclude(),
		Logger:  output.Logger,
	}
	output.Debug("template source", "url", src.URL, "root", src.RootDir)

	result, err := runner.Run(cmd.Context())
	if err != nil {
		reportFailure(cmd.ErrOrStderr(), err)
		return &reportedError{err: err}
	}
	if result == nil {
		return nil
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), output.FormatWarning(w))
	}
	for _, f := range result.Files {
		output.Debug("wrote", "file", f)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatSuccess("Hytale mod initialized at "+output.StyleNoun.Render(result.TargetDirectory)))
	return nil
}

// inputSource picks the interactive prompt or the flag values.
func inputSource(cmd *cobra.Command, opts *initOptions, wd string) prompt.InputSource {
	values := opts.config(wd)
	if opts.yes {
		if values.TargetDirectory == "" {
			values.TargetDirectory = wd
		}
		values.Namespace = orDefault(values.Namespace, scaffold.DefaultNamespace)
		values.ProjectName = orDefault(values.ProjectName, scaffold.DefaultProjectName)
		values.AuthorName = orDefault(values.AuthorName, scaffold.DefaultAuthorName)
		return prompt.Static{Config: values}
	}
	return &prompt.Terminal{
		In:         cmd.InOrStdin(),
		Out:        cmd.ErrOrStderr(),
		WorkingDir: wd,
		Defaults:   values,
	}
}

// config maps flags onto a scaffold configuration. A relative --dir is
// resolved against wd.
func (o *initOptions) config(wd string) scaffold.Config {
	dir := o.dir
	if dir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(wd, dir)
	}
	return scaffold.Config{
		TargetDirectory: dir,
		Namespace:       o.group,
		ProjectName:     o.name,
		PackageName:     o.pkg,
		MainClassName:   o.mainClass,
		AuthorName:      o.author,
		AuthorEmail:     o.email,
		AuthorURL:       o.url,
		Description:     o.description,
	}
}

// templateSource applies --template-url and --ref over the configured source.
func templateSource(opts *initOptions) (fetcher.Source, error) {
	if opts.templateURL != "" {
		return fetcher.Source{URL: opts.templateURL}, nil
	}
	if opts.ref != "" {
		return fetcher.ResolveSource(viper.GetString(config.KeyTemplateRepo), opts.ref)
	}
	return config.Template()
}

func userAgent() string {
	if ua := config.UserAgent(); ua != "" {
		return ua
	}
	return branding.UserAgent(buildVersion)
}

// reportFailure prints the single failure line and, when the error has a
// known kind, a hint.
func reportFailure(w io.Writer, err error) {
	fmt.Fprintln(w, output.FormatFailure("Failed to scaffold mod: "+err.Error()))
	if hint := modErrors.Hint(err); hint != "" {
		fmt.Fprintln(w, output.FormatHint(hint))
	}
}

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
