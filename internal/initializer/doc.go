// Package initializer runs one scaffolding session end to end: collect
// input, download and unpack the template in a private workspace, and write
// the configured project into the target directory. The workspace is removed
// on every exit path.
package initializer
