package writer

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Replacement is one literal marker and its substitute.
type Replacement struct {
	Old string
	New string
}

// ApplyReplacements runs the replacements in order over text. Each step sees
// the output of the previous one, so a substitute that contains a later
// marker is replaced again (see Hazards).
func ApplyReplacements(text string, reps []Replacement) string {
	for _, r := range reps {
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}

// ReplaceInFile applies reps to the file at path and writes it back with its
// original permissions.
func ReplaceInFile(path string, reps []Replacement) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out := ApplyReplacements(string(data), reps)
	return os.WriteFile(path, []byte(out), info.Mode().Perm())
}

// Hazards describes every pair whose substitute contains the marker of a
// later, non-identity pair. Those substitutes get rewritten again by
// ApplyReplacements.
func Hazards(reps []Replacement) []string {
	var out []string
	for i, r := range reps {
		for _, later := range reps[i+1:] {
			if later.Old == later.New || later.Old == "" {
				continue
			}
			if strings.Contains(r.New, later.Old) {
				out = append(out, fmt.Sprintf("value %q contains marker %q and will be substituted again", r.New, later.Old))
			}
		}
	}
	return out
}

// jsonText escapes s for use inside a JSON string literal.
func jsonText(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}

// xmlText escapes s for use as XML character data.
func xmlText(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
