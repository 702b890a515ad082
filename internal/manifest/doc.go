// Package manifest reads the plugin manifest (src/main/resources/manifest.json)
// shipped with the template and validates it against an embedded JSON Schema.
// The project writer checks the manifest after rewriting and reports problems
// as warnings.
package manifest
