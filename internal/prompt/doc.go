// Package prompt collects the scaffold configuration, either interactively
// from a terminal or from values supplied up front.
package prompt
