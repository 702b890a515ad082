package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	modErrors "github.com/hytalemodding/modinit/internal/errors"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		TargetDirectory: t.TempDir(),
		Namespace:       "dev.example",
		ProjectName:     "Cool Mod",
		PackageName:     "dev.example.coolmod",
		MainClassName:   "CoolMod",
		AuthorName:      "A",
		Description:     "d",
	}
}

func TestDefaults(t *testing.T) {
	if got := DefaultPackageName("dev.example", "Cool Mod"); got != "dev.example.coolmod" {
		t.Errorf("DefaultPackageName = %q, want %q", got, "dev.example.coolmod")
	}
	if got := DefaultMainClassName("Cool Mod"); got != "CoolMod" {
		t.Errorf("DefaultMainClassName = %q, want %q", got, "CoolMod")
	}
	if got := DefaultDescription("Cool Mod"); got != "Hytale mod: Cool Mod" {
		t.Errorf("DefaultDescription = %q", got)
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills blanks", func(t *testing.T) {
		c := &Config{Namespace: "dev.example", ProjectName: "Cool Mod"}
		c.ApplyDefaults()
		if c.PackageName != "dev.example.coolmod" {
			t.Errorf("PackageName = %q", c.PackageName)
		}
		if c.MainClassName != "CoolMod" {
			t.Errorf("MainClassName = %q", c.MainClassName)
		}
		if c.Description != "Hytale mod: Cool Mod" {
			t.Errorf("Description = %q", c.Description)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		c := &Config{
			Namespace:     "dev.example",
			ProjectName:   "Cool Mod",
			PackageName:   "org.other",
			MainClassName: "Entry",
			Description:   "mine",
		}
		c.ApplyDefaults()
		if c.PackageName != "org.other" || c.MainClassName != "Entry" || c.Description != "mine" {
			t.Errorf("explicit values overwritten: %+v", c)
		}
	})
}

func TestDerived(t *testing.T) {
	c := &Config{ProjectName: "Cool Mod", PackageName: "dev.example.coolmod", MainClassName: "CoolMod"}
	d := c.Derived()
	if d.CommandClassName != "CoolModCommand" {
		t.Errorf("CommandClassName = %q", d.CommandClassName)
	}
	if d.EventClassName != "CoolModEvent" {
		t.Errorf("EventClassName = %q", d.EventClassName)
	}
	if d.CommandName != "cool-mod" {
		t.Errorf("CommandName = %q", d.CommandName)
	}
	if d.MainClassFQN != "dev.example.coolmod.CoolMod" {
		t.Errorf("MainClassFQN = %q", d.MainClassFQN)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid with empty optionals", func(t *testing.T) {
		if err := validConfig(t).Validate(); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	})

	blanks := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"namespace", func(c *Config) { c.Namespace = "  " }},
		{"project name", func(c *Config) { c.ProjectName = "" }},
		{"package name", func(c *Config) { c.PackageName = "" }},
		{"main class name", func(c *Config) { c.MainClassName = "\t" }},
		{"author name", func(c *Config) { c.AuthorName = "" }},
		{"description", func(c *Config) { c.Description = " " }},
		{"target directory", func(c *Config) { c.TargetDirectory = "" }},
	}
	for _, tt := range blanks {
		t.Run("blank "+tt.name, func(t *testing.T) {
			c := validConfig(t)
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, modErrors.ErrValidation) {
				t.Errorf("error should wrap ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error should name %q, got %v", tt.name, err)
			}
		})
	}

	malformed := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty package segment", func(c *Config) { c.PackageName = "dev..coolmod" }},
		{"traversal in package", func(c *Config) { c.PackageName = "dev.../x" }},
		{"digit-leading segment", func(c *Config) { c.PackageName = "dev.1example.coolmod" }},
		{"empty namespace segment", func(c *Config) { c.Namespace = "com..acme" }},
		{"trailing namespace dot", func(c *Config) { c.Namespace = "com.acme." }},
		{"class with space", func(c *Config) { c.MainClassName = "Cool Mod" }},
		{"relative target", func(c *Config) { c.TargetDirectory = "relative/dir" }},
		{"missing target", func(c *Config) { c.TargetDirectory = filepath.Join(c.TargetDirectory, "nope") }},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig(t)
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, modErrors.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}

	t.Run("maven group with hyphen", func(t *testing.T) {
		c := validConfig(t)
		c.Namespace = "com.my-org"
		c.PackageName = "com.myorg.coolmod"
		if err := c.Validate(); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	})

	t.Run("target is a file", func(t *testing.T) {
		c := validConfig(t)
		file := filepath.Join(c.TargetDirectory, "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		c.TargetDirectory = file
		if err := c.Validate(); err == nil {
			t.Fatal("expected error for non-directory target")
		}
	})
}

func TestPackagePath(t *testing.T) {
	c := &Config{PackageName: "dev.example.coolmod"}
	got := c.PackagePath()
	want := []string{"dev", "example", "coolmod"}
	if len(got) != len(want) {
		t.Fatalf("PackagePath() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}
