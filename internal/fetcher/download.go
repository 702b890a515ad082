package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	modErrors "github.com/hytalemodding/modinit/internal/errors"
)

var (
	// ErrTooManyRedirects is returned when a download exceeds its redirect budget.
	ErrTooManyRedirects = errors.New("too many redirects when downloading template")

	// ErrMissingLocation is returned for a redirect response without a Location header.
	ErrMissingLocation = errors.New("redirect response is missing a Location header")
)

// StatusError reports a response status that is neither 200 nor a redirect.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to download template (status %d)", e.Code)
}

// isRedirect reports whether the status is one the fetcher follows.
func isRedirect(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// Download fetches rawURL and streams the body into destPath. Redirects are
// followed up to the configured budget, resolving relative Location values
// against the URL that produced them. There are no retries.
func (f *Fetcher) Download(ctx context.Context, rawURL, destPath string) error {
	current, err := url.Parse(rawURL)
	if err != nil {
		return modErrors.Mark(modErrors.ErrNetwork, fmt.Errorf("parsing template URL %q: %w", rawURL, err))
	}

	client := f.noFollow()
	redirectsLeft := f.maxRedirects

	for {
		resp, err := f.get(ctx, client, current.String())
		if err != nil {
			return modErrors.Mark(modErrors.ErrNetwork, err)
		}

		switch {
		case isRedirect(resp.StatusCode):
			location := resp.Header.Get("Location")
			drain(resp)
			if location == "" {
				return modErrors.Mark(modErrors.ErrNetwork,
					fmt.Errorf("status %d from %s: %w", resp.StatusCode, current, ErrMissingLocation))
			}
			if redirectsLeft <= 0 {
				return modErrors.Mark(modErrors.ErrNetwork, ErrTooManyRedirects)
			}
			next, err := current.Parse(location)
			if err != nil {
				return modErrors.Mark(modErrors.ErrNetwork,
					fmt.Errorf("parsing redirect location %q: %w", location, err))
			}
			f.logger.Debug("following redirect", "status", resp.StatusCode, "from", current.String(), "to", next.String())
			current = next
			redirectsLeft--

		case resp.StatusCode == http.StatusOK:
			n, err := writeBody(resp, destPath)
			if err != nil {
				return err
			}
			f.logger.Debug("template downloaded", "url", current.String(), "bytes", n, "path", destPath)
			return nil

		default:
			drain(resp)
			return modErrors.Mark(modErrors.ErrNetwork, &StatusError{Code: resp.StatusCode, URL: current.String()})
		}
	}
}

func (f *Fetcher) get(ctx context.Context, client *http.Client, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading template: %w", err)
	}
	return resp, nil
}

// writeBody streams the response body to destPath and closes the body.
// Local file failures are filesystem errors; a broken body is a network one.
func writeBody(resp *http.Response, destPath string) (int64, error) {
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return 0, modErrors.Mark(modErrors.ErrFilesystem, fmt.Errorf("creating download file: %w", err))
	}

	fw := &fileWriter{f: out}
	n, err := io.Copy(fw, resp.Body)
	if err != nil {
		out.Close()
		if fw.err != nil {
			return n, modErrors.Mark(modErrors.ErrFilesystem, fmt.Errorf("writing download: %w", err))
		}
		return n, modErrors.Mark(modErrors.ErrNetwork, fmt.Errorf("reading download: %w", err))
	}
	if err := out.Close(); err != nil {
		return n, modErrors.Mark(modErrors.ErrFilesystem, fmt.Errorf("closing download file: %w", err))
	}
	return n, nil
}

// fileWriter remembers whether a write to the destination file failed.
type fileWriter struct {
	f   *os.File
	err error
}

func (w *fileWriter) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// drain discards and closes a response body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
