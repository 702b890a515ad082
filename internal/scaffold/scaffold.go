package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	modErrors "github.com/hytalemodding/modinit/internal/errors"
	"github.com/hytalemodding/modinit/internal/naming"
)

// Defaults offered by the input prompts.
const (
	DefaultNamespace   = "dev.hytalemodding"
	DefaultProjectName = "MyHytaleMod"
	DefaultAuthorName  = "Your Name"
)

var javaIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Config is the validated scaffold configuration. It is created once by an
// input source and consumed once by the project writer.
type Config struct {
	TargetDirectory string // absolute, existing directory
	Namespace       string // e.g., "dev.example"
	ProjectName     string // e.g., "Cool Mod"
	PackageName     string // e.g., "dev.example.coolmod"
	MainClassName   string // e.g., "CoolMod"
	AuthorName      string
	AuthorEmail     string // optional
	AuthorURL       string // optional
	Description     string
}

// Derived holds identifiers computed from a Config.
type Derived struct {
	CommandClassName string // <Main>Command
	EventClassName   string // <Main>Event
	CommandName      string // kebab-case project name
	MainClassFQN     string // <package>.<Main>
}

// DefaultPackageName returns namespace + "." + the normalized project name.
func DefaultPackageName(namespace, projectName string) string {
	return namespace + "." + naming.PackageSegment(projectName)
}

// DefaultMainClassName returns the title-cased project name.
func DefaultMainClassName(projectName string) string {
	return naming.PascalCase(projectName)
}

// DefaultDescription returns the templated description for a project.
func DefaultDescription(projectName string) string {
	return fmt.Sprintf("Hytale mod: %s", projectName)
}

// ApplyDefaults fills blank derivable fields (package, main class,
// description) from Namespace and ProjectName.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.PackageName) == "" && c.Namespace != "" && c.ProjectName != "" {
		c.PackageName = DefaultPackageName(c.Namespace, c.ProjectName)
	}
	if strings.TrimSpace(c.MainClassName) == "" {
		c.MainClassName = DefaultMainClassName(c.ProjectName)
	}
	if strings.TrimSpace(c.Description) == "" && c.ProjectName != "" {
		c.Description = DefaultDescription(c.ProjectName)
	}
}

// Derived computes the identifiers the writer substitutes into the template.
func (c *Config) Derived() Derived {
	return Derived{
		CommandClassName: c.MainClassName + "Command",
		EventClassName:   c.MainClassName + "Event",
		CommandName:      naming.KebabCase(c.ProjectName),
		MainClassFQN:     c.PackageName + "." + c.MainClassName,
	}
}

// PackagePath splits the package name into path segments.
func (c *Config) PackagePath() []string {
	return strings.Split(c.PackageName, ".")
}

// Validate checks that every required field is present and well formed.
// AuthorEmail and AuthorURL may be empty.
func (c *Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"target directory", c.TargetDirectory},
		{"namespace", c.Namespace},
		{"project name", c.ProjectName},
		{"package name", c.PackageName},
		{"main class name", c.MainClassName},
		{"author name", c.AuthorName},
		{"description", c.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return modErrors.Wrap(modErrors.ErrValidation, f.name+" is required")
		}
	}

	for _, seg := range strings.Split(c.Namespace, ".") {
		if strings.TrimSpace(seg) == "" {
			return modErrors.Wrap(modErrors.ErrValidation,
				fmt.Sprintf("namespace %q must not contain empty segments", c.Namespace))
		}
	}
	if err := validateDotted("package name", c.PackageName); err != nil {
		return err
	}
	if !javaIdentifier.MatchString(c.MainClassName) {
		return modErrors.Wrap(modErrors.ErrValidation,
			fmt.Sprintf("main class name %q is not a valid Java identifier", c.MainClassName))
	}

	if !filepath.IsAbs(c.TargetDirectory) {
		return modErrors.Wrap(modErrors.ErrValidation,
			fmt.Sprintf("target directory %q must be an absolute path", c.TargetDirectory))
	}
	info, err := os.Stat(c.TargetDirectory)
	if err != nil {
		return modErrors.Wrap(modErrors.ErrValidation,
			fmt.Sprintf("target directory %s does not exist", c.TargetDirectory))
	}
	if !info.IsDir() {
		return modErrors.Wrap(modErrors.ErrValidation,
			fmt.Sprintf("target %s is not a directory", c.TargetDirectory))
	}
	return nil
}

// validateDotted checks a dot-segmented Java identifier such as a package name.
func validateDotted(field, value string) error {
	for _, seg := range strings.Split(value, ".") {
		if !javaIdentifier.MatchString(seg) {
			return modErrors.Wrap(modErrors.ErrValidation,
				fmt.Sprintf("%s %q must be dot-separated Java identifiers", field, value))
		}
	}
	return nil
}
