package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// inputFileName is the name of the downloaded input inside a problem dir.
const inputFileName = "input.txt"

// problemRequest describes a single invocation.
type problemRequest struct {
	Day          int
	Year         int
	Session      string // optional; replaces the saved cookie when set
	TemplatePath string // optional
}

// problemDirName returns the directory name used for the given puzzle.
func problemDirName(day, year int) string {
	return fmt.Sprintf("day-%d-%d", day, year)
}

// problemFetcher runs the fetch workflow: resolve the session cookie,
// download the input, create the problem dir and seed it from a template.
type problemFetcher struct {
	root   string
	log    *logger
	store  *sessionStore
	client *inputClient
}

func newProblemFetcher(cfg appConfig, root string, log *logger) *problemFetcher {
	sessionPath := cfg.SessionFile
	if !filepath.IsAbs(sessionPath) {
		sessionPath = filepath.Join(root, sessionPath)
	}
	return &problemFetcher{
		root:   root,
		log:    log,
		store:  newSessionStore(sessionPath),
		client: newInputClient(cfg, log),
	}
}

// run executes the workflow and returns the created problem dir. Nothing
// is rolled back on failure.
func (f *problemFetcher) run(ctx context.Context, req problemRequest) (string, error) {
	f.log.info("[1/2] validating args...")
	if req.Session != "" {
		if err := f.store.save(req.Session); err != nil {
			return "", err
		}
		f.log.debugf("session cookie saved at %s", f.store.path)
	}

	session, err := f.store.load()
	if err != nil {
		return "", err
	}

	if req.TemplatePath != "" {
		if err := validateTemplate(req.TemplatePath); err != nil {
			return "", err
		}
	}

	f.log.info("[2/2] downloading input and copying template...")
	input, err := f.client.fetchInput(ctx, req.Year, req.Day, session)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(f.root, problemDirName(req.Day, req.Year))
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create folder at %s: %w", dir, err)
	}

	inputPath := filepath.Join(dir, inputFileName)
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		return "", fmt.Errorf("could not write problem input at %s: %w", inputPath, err)
	}
	f.log.debugf("wrote %d bytes to %s", len(input), inputPath)

	if req.TemplatePath != "" {
		if err := copyTree(req.TemplatePath, dir); err != nil {
			return "", fmt.Errorf("could not copy from %s to %s: %w", req.TemplatePath, dir, err)
		}
		f.log.debugf("template %s copied into %s", req.TemplatePath, dir)
	}

	f.log.ok("you're good to go now, good luck with your problem!")
	return dir, nil
}

// validateTemplate checks that path exists and is a directory.
func validateTemplate(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("template path is provided, yet there is no folder at %s", path)
		}
		return fmt.Errorf("stat template %s: %w", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("the template provided at %s is not a directory", path)
	}
	return nil
}
