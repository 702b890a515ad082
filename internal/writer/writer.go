package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	modErrors "github.com/hytalemodding/modinit/internal/errors"
	"github.com/hytalemodding/modinit/internal/manifest"
	"github.com/hytalemodding/modinit/internal/scaffold"
)

// Template layout and marker values.
const (
	TemplatePackage = "dev.hytalemodding"
	TemplateMain    = "ExamplePlugin"
	TemplateCommand = "ExampleCommand"
	TemplateEvent   = "ExampleEvent"

	templateRegistration = `new ExampleCommand("example", "An example command")`
	templateGreeting     = "Hello from ExampleCommand!"
)

var (
	javaRoot     = filepath.Join("src", "main", "java")
	manifestPath = filepath.Join("src", "main", "resources", "manifest.json")
	pomPath      = "pom.xml"
)

// Result describes what Apply changed in the target directory.
type Result struct {
	PackageDir string   // relative path of the relocated package
	Files      []string // relative paths of rewritten files, in write order
	Warnings   []string
}

// Writer copies and rewrites a template into a target directory.
type Writer struct {
	exclude map[string]bool
	logger  *log.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithExclude replaces the set of base names skipped during copy.
func WithExclude(names []string) Option {
	return func(w *Writer) {
		w.exclude = excludeSet(names)
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Writer. By default it skips DefaultExclude.
func New(opts ...Option) *Writer {
	w := &Writer{
		exclude: excludeSet(DefaultExclude),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Materialize copies templateRoot into cfg.TargetDirectory and applies the
// configuration to the copy.
func (w *Writer) Materialize(templateRoot string, cfg *scaffold.Config) (*Result, error) {
	if err := w.Copy(templateRoot, cfg.TargetDirectory); err != nil {
		return nil, err
	}
	return w.Apply(cfg)
}

// Copy copies the template tree into targetDir, skipping excluded entries.
func (w *Writer) Copy(templateRoot, targetDir string) error {
	w.logger.Debug("copying template", "from", templateRoot, "to", targetDir)
	if err := CopyTree(templateRoot, targetDir, w.exclude); err != nil {
		return modErrors.Mark(modErrors.ErrFilesystem,
			fmt.Errorf("copying template to %s: %w", targetDir, err))
	}
	return nil
}

// fileEdit is one template file to rewrite and, optionally, rename.
type fileEdit struct {
	dir     string // relative to the target directory
	name    string // template file name
	newName string // empty keeps the name
	reps    []Replacement
}

// Apply relocates the template package and rewrites sources, pom.xml and
// manifest.json in cfg.TargetDirectory. It must run on a freshly copied
// template: once the markers are gone a second run fails on missing files.
func (w *Writer) Apply(cfg *scaffold.Config) (*Result, error) {
	target := cfg.TargetDirectory
	root := filepath.Join(target, javaRoot)
	oldPkg := filepath.Join(append([]string{root}, strings.Split(TemplatePackage, ".")...)...)
	newPkg := filepath.Join(append([]string{root}, cfg.PackagePath()...)...)

	w.logger.Debug("relocating package", "from", TemplatePackage, "to", cfg.PackageName)
	if err := RelocatePackage(root, oldPkg, newPkg); err != nil {
		return nil, modErrors.Mark(modErrors.ErrFilesystem, err)
	}

	pkgRel, _ := filepath.Rel(target, newPkg)
	result := &Result{PackageDir: pkgRel}

	for _, edit := range sourceEdits(cfg, pkgRel) {
		if err := w.applyEdit(target, edit, result); err != nil {
			return result, err
		}
	}
	for _, edit := range metadataEdits(cfg) {
		if err := w.applyEdit(target, edit, result); err != nil {
			return result, err
		}
	}

	w.checkManifest(filepath.Join(target, manifestPath), cfg, result)
	return result, nil
}

func (w *Writer) applyEdit(target string, edit fileEdit, result *Result) error {
	src := filepath.Join(target, edit.dir, edit.name)
	rel := filepath.Join(edit.dir, edit.name)

	if _, err := os.Stat(src); err != nil {
		return modErrors.Mark(modErrors.ErrFilesystem,
			fmt.Errorf("template file %s not found: %w", rel, err))
	}

	for _, h := range Hazards(edit.reps) {
		result.Warnings = append(result.Warnings, rel+": "+h)
	}

	if err := ReplaceInFile(src, edit.reps); err != nil {
		return modErrors.Mark(modErrors.ErrFilesystem, fmt.Errorf("rewriting %s: %w", rel, err))
	}

	if edit.newName != "" && edit.newName != edit.name {
		dst := filepath.Join(target, edit.dir, edit.newName)
		if err := os.Rename(src, dst); err != nil {
			return modErrors.Mark(modErrors.ErrFilesystem, fmt.Errorf("renaming %s: %w", rel, err))
		}
		rel = filepath.Join(edit.dir, edit.newName)
	}

	w.logger.Debug("rewrote file", "path", rel, "replacements", len(edit.reps))
	result.Files = append(result.Files, rel)
	return nil
}

// sourceEdits lists the Java sources to rewrite. The registration line is
// replaced before the bare class markers, otherwise the class marker would
// consume it first and the command would keep the template's name.
func sourceEdits(cfg *scaffold.Config, pkgDir string) []fileEdit {
	d := cfg.Derived()
	pkg := cfg.PackageName

	return []fileEdit{
		{
			dir:     pkgDir,
			name:    TemplateMain + ".java",
			newName: cfg.MainClassName + ".java",
			reps: []Replacement{
				{"package " + TemplatePackage + ";", "package " + pkg + ";"},
				{"import " + TemplatePackage + ".", "import " + pkg + "."},
				{templateRegistration, fmt.Sprintf("new %s(%q, %q)", d.CommandClassName, d.CommandName, "Command for "+cfg.ProjectName)},
				{TemplateMain, cfg.MainClassName},
				{TemplateCommand, d.CommandClassName},
				{TemplateEvent, d.EventClassName},
			},
		},
		{
			dir:     filepath.Join(pkgDir, "commands"),
			name:    TemplateCommand + ".java",
			newName: d.CommandClassName + ".java",
			reps: []Replacement{
				{"package " + TemplatePackage + ".commands;", "package " + pkg + ".commands;"},
				{templateGreeting, "Hello from " + d.CommandClassName + "!"},
				{TemplateCommand, d.CommandClassName},
			},
		},
		{
			dir:     filepath.Join(pkgDir, "events"),
			name:    TemplateEvent + ".java",
			newName: d.EventClassName + ".java",
			reps: []Replacement{
				{"package " + TemplatePackage + ".events;", "package " + pkg + ".events;"},
				{TemplateEvent, d.EventClassName},
			},
		},
	}
}

// metadataEdits lists the build descriptor and plugin manifest rewrites.
// Values are escaped for the file format they land in.
func metadataEdits(cfg *scaffold.Config) []fileEdit {
	d := cfg.Derived()
	jsonField := func(key, value string) string {
		return fmt.Sprintf(`"%s": "%s"`, key, jsonText(value))
	}

	return []fileEdit{
		{
			name: pomPath,
			reps: []Replacement{
				{"<groupId>" + TemplatePackage + "</groupId>", "<groupId>" + xmlText(cfg.Namespace) + "</groupId>"},
				{"<artifactId>" + TemplateMain + "</artifactId>", "<artifactId>" + xmlText(cfg.ProjectName) + "</artifactId>"},
			},
		},
		{
			dir:  filepath.Dir(manifestPath),
			name: filepath.Base(manifestPath),
			reps: []Replacement{
				{`"Group": "dev.hytalemodding"`, jsonField("Group", cfg.Namespace)},
				{`"Name": "ExamplePlugin"`, jsonField("Name", cfg.ProjectName)},
				{`"Description": "Description of your plugin"`, jsonField("Description", cfg.Description)},
				{`"Name": "Your Name"`, jsonField("Name", cfg.AuthorName)},
				{`"Email": "your.email@example.com"`, jsonField("Email", cfg.AuthorEmail)},
				{`"Url": "https://your-website.com"`, jsonField("Url", cfg.AuthorURL)},
				{`"Main": "dev.hytalemodding.ExamplePlugin"`, jsonField("Main", d.MainClassFQN)},
			},
		},
	}
}

// checkManifest validates the rewritten manifest and confirms its identity
// fields carry the configured values. Problems are recorded as warnings; a
// manifest that can't be checked is not a failure.
func (w *Writer) checkManifest(path string, cfg *scaffold.Config, result *Result) {
	res, err := manifest.ValidateFile(path)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not validate manifest: %v", err))
		return
	}
	for _, issue := range res.Issues {
		result.Warnings = append(result.Warnings, "manifest.json "+issue.String())
	}

	plugin, err := manifest.Parse(path)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not read manifest: %v", err))
		return
	}
	fields := []struct {
		name, got, want string
	}{
		{"Group", plugin.Group, cfg.Namespace},
		{"Main", plugin.Main, cfg.Derived().MainClassFQN},
	}
	for _, f := range fields {
		if f.got != f.want {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("manifest.json %s is %q, expected %q", f.name, f.got, f.want))
		}
	}
}
