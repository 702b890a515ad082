package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hytalemodding/modinit/internal/scaffold"
)

// Terminal asks for each configuration value on a line-oriented terminal.
// Pressing enter accepts the default shown in brackets. End of input at any
// question cancels the whole collection.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	// WorkingDir is the default target directory. Empty uses the process
	// working directory.
	WorkingDir string

	// Defaults pre-fills answers, e.g. from command-line flags.
	Defaults scaffold.Config
}

// Collect runs the questions in order and returns the answers.
func (t *Terminal) Collect(ctx context.Context) (*scaffold.Config, error) {
	reader := bufio.NewReader(t.In)
	ask := func(label, def string, required bool) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", ErrCancelled
		}
		return askLine(reader, t.Out, label, def, required)
	}

	wd := t.WorkingDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}
	d := t.Defaults

	cfg := &scaffold.Config{}
	var err error

	target := d.TargetDirectory
	if target == "" {
		target = wd
	}
	if cfg.TargetDirectory, err = ask("Target folder for the mod", target, true); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.TargetDirectory) {
		cfg.TargetDirectory = filepath.Join(wd, cfg.TargetDirectory)
	}

	if cfg.Namespace, err = ask("Group ID (org)", orDefault(d.Namespace, scaffold.DefaultNamespace), true); err != nil {
		return nil, err
	}
	if cfg.ProjectName, err = ask("Mod name", orDefault(d.ProjectName, scaffold.DefaultProjectName), true); err != nil {
		return nil, err
	}
	pkg := orDefault(d.PackageName, scaffold.DefaultPackageName(cfg.Namespace, cfg.ProjectName))
	if cfg.PackageName, err = ask("Java package name", pkg, true); err != nil {
		return nil, err
	}
	class := orDefault(d.MainClassName, scaffold.DefaultMainClassName(cfg.ProjectName))
	if cfg.MainClassName, err = ask("Main class name", class, true); err != nil {
		return nil, err
	}
	if cfg.AuthorName, err = ask("Author name", orDefault(d.AuthorName, scaffold.DefaultAuthorName), true); err != nil {
		return nil, err
	}
	if cfg.AuthorEmail, err = ask("Author email", d.AuthorEmail, false); err != nil {
		return nil, err
	}
	if cfg.AuthorURL, err = ask("Author URL", d.AuthorURL, false); err != nil {
		return nil, err
	}
	desc := orDefault(d.Description, scaffold.DefaultDescription(cfg.ProjectName))
	if cfg.Description, err = ask("Mod description", desc, true); err != nil {
		return nil, err
	}

	return cfg, nil
}

// askLine prints label with its default and reads one answer. A blank
// required answer prints "Required" and asks again.
func askLine(r *bufio.Reader, w io.Writer, label, def string, required bool) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(w, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(w, "%s: ", label)
		}

		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(w)
				return "", ErrCancelled
			}
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = def
		}
		if required && strings.TrimSpace(answer) == "" {
			fmt.Fprintln(w, "Required")
			continue
		}
		return answer, nil
	}
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return def
}
