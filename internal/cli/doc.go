// Package cli defines the Cobra command tree for the modinit CLI: init,
// config and version. Commands parse flags, wire the internal packages
// together and format results; the scaffolding itself lives elsewhere.
package cli
