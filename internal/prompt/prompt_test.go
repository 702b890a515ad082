package prompt

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hytalemodding/modinit/internal/scaffold"
)

func TestTerminal_AcceptsDefaults(t *testing.T) {
	wd := t.TempDir()
	var out bytes.Buffer
	term := &Terminal{In: strings.NewReader(strings.Repeat("\n", 9)), Out: &out, WorkingDir: wd}

	cfg, err := term.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	want := scaffold.Config{
		TargetDirectory: wd,
		Namespace:       "dev.hytalemodding",
		ProjectName:     "MyHytaleMod",
		PackageName:     "dev.hytalemodding.myhytalemod",
		MainClassName:   "MyHytaleMod",
		AuthorName:      "Your Name",
		Description:     "Hytale mod: MyHytaleMod",
	}
	if *cfg != want {
		t.Errorf("config = %+v\nwant     %+v", *cfg, want)
	}
	if !strings.Contains(out.String(), "Group ID (org) [dev.hytalemodding]: ") {
		t.Errorf("prompt output missing group question:\n%s", out.String())
	}
}

func TestTerminal_DerivesFromAnswers(t *testing.T) {
	wd := t.TempDir()
	input := strings.Join([]string{
		"mods",        // relative target
		"dev.example", // group
		"Cool Mod",    // name
		"",            // package default
		"",            // class default
		"A",           // author
		"a@example.com",
		"",
		"",
	}, "\n") + "\n"

	term := &Terminal{In: strings.NewReader(input), Out: &bytes.Buffer{}, WorkingDir: wd}
	cfg, err := term.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	if cfg.TargetDirectory != filepath.Join(wd, "mods") {
		t.Errorf("TargetDirectory = %q", cfg.TargetDirectory)
	}
	if cfg.PackageName != "dev.example.coolmod" {
		t.Errorf("PackageName = %q", cfg.PackageName)
	}
	if cfg.MainClassName != "CoolMod" {
		t.Errorf("MainClassName = %q", cfg.MainClassName)
	}
	if cfg.AuthorEmail != "a@example.com" || cfg.AuthorURL != "" {
		t.Errorf("optional fields = %q, %q", cfg.AuthorEmail, cfg.AuthorURL)
	}
	if cfg.Description != "Hytale mod: Cool Mod" {
		t.Errorf("Description = %q", cfg.Description)
	}
}

func TestTerminal_RequiredReasks(t *testing.T) {
	// A name with no letters derives an empty class name, so the class
	// question has no default and a blank answer is re-asked.
	input := "\n\n!!!\n\n\nBang\n\n\n\n\n"
	var out bytes.Buffer
	term := &Terminal{In: strings.NewReader(input), Out: &out, WorkingDir: t.TempDir()}

	cfg, err := term.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if cfg.MainClassName != "Bang" {
		t.Errorf("MainClassName = %q, want Bang", cfg.MainClassName)
	}
	if !strings.Contains(out.String(), "Main class name: Required\n") {
		t.Errorf("expected Required after blank class name:\n%s", out.String())
	}
}

func TestAskLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      string
		required bool
		want     string
		wantErr  error
		wantOut  string
	}{
		{"answer", "value\n", "def", true, "value", nil, "Q [def]: "},
		{"default", "\n", "def", true, "def", nil, "Q [def]: "},
		{"optional blank", "\n", "", false, "", nil, "Q: "},
		{"required blank re-asks", "\n  \nok\n", "", true, "ok", nil, "Required"},
		{"last line without newline", "tail", "", true, "tail", nil, "Q: "},
		{"eof cancels", "", "def", true, "", ErrCancelled, "Q [def]: "},
		{"eof after blanks cancels", "\n", "", true, "", ErrCancelled, "Required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := askLine(bufioReader(tt.input), &out, "Q", tt.def, tt.required)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestTerminal_EOFCancels(t *testing.T) {
	term := &Terminal{In: strings.NewReader("\n\n"), Out: &bytes.Buffer{}, WorkingDir: t.TempDir()}
	cfg, err := term.Collect(context.Background())
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config on cancel, got %+v", cfg)
	}
}

func TestTerminal_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	term := &Terminal{In: strings.NewReader("\n"), Out: &bytes.Buffer{}, WorkingDir: t.TempDir()}
	if _, err := term.Collect(ctx); !errors.Is(err, ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}

func TestTerminal_FlagDefaults(t *testing.T) {
	target := t.TempDir()
	term := &Terminal{
		In:         strings.NewReader(strings.Repeat("\n", 9)),
		Out:        &bytes.Buffer{},
		WorkingDir: t.TempDir(),
		Defaults: scaffold.Config{
			TargetDirectory: target,
			Namespace:       "org.acme",
			ProjectName:     "Rocket",
		},
	}
	cfg, err := term.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if cfg.TargetDirectory != target || cfg.PackageName != "org.acme.rocket" || cfg.MainClassName != "Rocket" {
		t.Errorf("config = %+v", *cfg)
	}
}

func TestStatic(t *testing.T) {
	src := Static{Config: scaffold.Config{
		TargetDirectory: "/tmp/x",
		Namespace:       "dev.example",
		ProjectName:     "Cool Mod",
		AuthorName:      "A",
	}}

	cfg, err := src.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if cfg.PackageName != "dev.example.coolmod" || cfg.MainClassName != "CoolMod" || cfg.Description != "Hytale mod: Cool Mod" {
		t.Errorf("derived defaults not applied: %+v", *cfg)
	}
	if src.Config.PackageName != "" {
		t.Error("Collect must not mutate the source values")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Collect(ctx); !errors.Is(err, ErrCancelled) {
		t.Errorf("cancelled context: err = %v", err)
	}
}

func bufioReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
