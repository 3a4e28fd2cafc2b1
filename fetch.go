package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// errNotText indicates the response body could not be decoded as text.
var errNotText = errors.New("response body is not valid text")

// inputClient downloads puzzle inputs from the puzzle site.
type inputClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       *logger
}

// newInputClient creates a client from cfg. A zero cfg.Timeout means the
// request may block indefinitely.
func newInputClient(cfg appConfig, log *logger) *inputClient {
	return &inputClient{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}
}

// fetchError wraps a failure to download the input at URL.
type fetchError struct {
	URL string
	Err error
}

func (e *fetchError) Error() string {
	return fmt.Sprintf("could not fetch Advent of Code input at %s: %v", e.URL, e.Err)
}

func (e *fetchError) Unwrap() error { return e.Err }

// inputURL returns the input URL of the given puzzle.
func inputURL(baseURL string, year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(baseURL, "/"), year, day)
}

// fetchInput downloads the input of the given puzzle.
func (c *inputClient) fetchInput(ctx context.Context, year, day int, session string) (string, error) {
	return c.fetch(ctx, inputURL(c.baseURL, year, day), session)
}

// fetch issues a GET to rawURL with the session cookie and returns the body
// as text. The status code is not checked: whatever the server answers is
// returned, so an error page may come back as the "input".
func (c *inputClient) fetch(ctx context.Context, rawURL, session string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", &fetchError{URL: rawURL, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Cookie", "session="+session)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.debugf("GET %s", rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &fetchError{URL: rawURL, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &fetchError{URL: rawURL, Err: fmt.Errorf("read response: %w", err)}
	}
	c.log.debugf("response: status=%d bytes=%d", resp.StatusCode, len(b))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.warnf("server answered %s, the saved input may not be a puzzle input", resp.Status)
	}

	text, err := decodeText(b, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &fetchError{URL: rawURL, Err: err}
	}
	return text, nil
}

// decodeText converts body to a string using the charset named in
// contentType. Missing or unknown charsets are treated as UTF-8.
func decodeText(body []byte, contentType string) (string, error) {
	label := ""
	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil {
			label = params["charset"]
		}
	}

	if label != "" {
		if enc, err := htmlindex.Get(label); err == nil {
			if name, _ := htmlindex.Name(enc); name != "utf-8" {
				out, err := enc.NewDecoder().Bytes(body)
				if err != nil {
					return "", fmt.Errorf("%w: decode %s: %v", errNotText, label, err)
				}
				return string(out), nil
			}
		}
	}

	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: invalid UTF-8", errNotText)
	}
	return string(body), nil
}
