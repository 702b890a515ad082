// Package writer turns an extracted plugin template into the user's project.
//
// It copies the template tree into the target directory (skipping IDE
// metadata), moves the template's default Java package to the configured
// package, renames the example classes after the main class, and rewrites
// literal markers in the sources, pom.xml and manifest.json. Substitution is
// plain ordered replace-all; there is no parsing. Every step runs in order and
// the first failure aborts without rolling back what was already written.
package writer
