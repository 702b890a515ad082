// Package testutil builds a small replica of the plugin template for tests:
// the directory tree, the marker strings the writer rewrites, and a zip
// archive of it laid out the way the hosting service serves branch archives.
package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// RootDir is the top-level directory inside the fixture archive.
const RootDir = "plugin-template-main"

// PluginJava is the template entry-point class.
const PluginJava = `package dev.hytalemodding;

import com.hypixel.hytale.server.core.plugin.JavaPlugin;
import com.hypixel.hytale.server.core.plugin.JavaPluginInit;
import dev.hytalemodding.commands.ExampleCommand;
import dev.hytalemodding.events.ExampleEvent;

public class ExamplePlugin extends JavaPlugin {

    public ExamplePlugin(JavaPluginInit init) {
        super(init);
    }

    @Override
    protected void setup() {
        this.getCommandRegistry().registerCommand(new ExampleCommand("example", "An example command"));
        this.getEventRegistry().registerGlobal(ExampleEvent.class, ExampleEvent::onPlayerReady);
    }
}
`

// CommandJava is the template example command.
const CommandJava = `package dev.hytalemodding.commands;

import com.hypixel.hytale.server.core.command.system.CommandContext;
import com.hypixel.hytale.server.core.command.system.basecommands.CommandBase;

public class ExampleCommand extends CommandBase {

    public ExampleCommand(String name, String description) {
        super(name, description);
    }

    @Override
    protected void executeSync(CommandContext context) {
        context.sendMessage("Hello from ExampleCommand!");
    }
}
`

// EventJava is the template example event listener.
const EventJava = `package dev.hytalemodding.events;

import com.hypixel.hytale.server.core.event.events.player.PlayerReadyEvent;

public class ExampleEvent {

    public static void onPlayerReady(PlayerReadyEvent event) {
        event.getPlayer().sendMessage("Welcome!");
    }
}
`

// PomXML is the template build descriptor.
const PomXML = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
    <modelVersion>4.0.0</modelVersion>
    <groupId>dev.hytalemodding</groupId>
    <artifactId>ExamplePlugin</artifactId>
    <version>1.0.0</version>
</project>
`

// ManifestJSON is the template plugin manifest.
const ManifestJSON = `{
  "Group": "dev.hytalemodding",
  "Name": "ExamplePlugin",
  "Version": "1.0.0",
  "Description": "Description of your plugin",
  "Authors": [
    {
      "Name": "Your Name",
      "Email": "your.email@example.com",
      "Url": "https://your-website.com"
    }
  ],
  "Website": "",
  "ServerVersion": "*",
  "Dependencies": {},
  "OptionalDependencies": {},
  "DisabledByDefault": false,
  "IncludesAssetPack": false,
  "Main": "dev.hytalemodding.ExamplePlugin"
}
`

// Files returns the fixture tree as relative path → content. It includes an
// IDE metadata directory that the copy step must skip.
func Files() map[string]string {
	return map[string]string{
		"README.md":                        "# Example Plugin\n",
		"pom.xml":                          PomXML,
		".idea/workspace.xml":              "<project/>\n",
		".idea/modules/plugin.iml":         "<module/>\n",
		"src/main/resources/manifest.json": ManifestJSON,
		"src/main/java/dev/hytalemodding/ExamplePlugin.java":           PluginJava,
		"src/main/java/dev/hytalemodding/commands/ExampleCommand.java": CommandJava,
		"src/main/java/dev/hytalemodding/events/ExampleEvent.java":     EventJava,
	}
}

// WriteTemplate writes the fixture tree under root and returns root.
func WriteTemplate(t *testing.T, root string) string {
	t.Helper()
	for rel, content := range Files() {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return root
}

// ZipEntry is one raw entry for BuildZip.
type ZipEntry struct {
	Name string
	Body string
}

// BuildZip creates an in-memory zip from the given entries in order.
// Names ending in "/" become directory entries.
func BuildZip(t *testing.T, entries []ZipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", e.Name, err)
		}
		if e.Body != "" {
			if _, err := w.Write([]byte(e.Body)); err != nil {
				t.Fatalf("writing zip entry %s: %v", e.Name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// TemplateZip returns the fixture tree as a branch archive rooted at RootDir,
// with explicit directory entries like the hosting service emits.
func TemplateZip(t *testing.T) []byte {
	t.Helper()
	files := Files()
	names := make([]string, 0, len(files))
	for rel := range files {
		names = append(names, rel)
	}
	sort.Strings(names)

	entries := []ZipEntry{{Name: RootDir + "/"}}
	seenDirs := map[string]bool{}
	for _, rel := range names {
		dir := filepath.ToSlash(filepath.Dir(rel))
		if dir != "." && !seenDirs[dir] {
			seenDirs[dir] = true
			entries = append(entries, ZipEntry{Name: RootDir + "/" + dir + "/"})
		}
		entries = append(entries, ZipEntry{Name: RootDir + "/" + rel, Body: files[rel]})
	}
	return BuildZip(t, entries)
}
