// Package fetcher downloads the plugin template archive and unpacks it into a
// workspace. Downloads follow HTTP redirects by hand against a bounded budget,
// and extraction refuses archive entries that would land outside the
// destination directory.
package fetcher
