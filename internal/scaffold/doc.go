// Package scaffold holds the configuration record that drives project
// generation: the nine user-supplied fields, the defaults derived from the mod
// name, and the identifiers (command class, event class, command name) the
// project writer substitutes into the template.
package scaffold
