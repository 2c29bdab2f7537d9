// Copyright Civic Data Works, 2026. All rights reserved.

// Package scrape launches the voter-list crawl by delegating to the
// scrapy framework's own command line. The launcher contributes no crawl,
// retry, or extraction logic of its own; it checks the environment
// (warn-only) and starts a named job.
package scrape

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/civicdata/district-tools/pkg/types"
)

const (
	binPython = "python3"
	binScrapy = "scrapy"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) (string, error)
	RunPiped(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

func (o *osExecutor) RunPiped(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Launcher starts crawl jobs through an injected executor.
type Launcher struct {
	exec executor
}

// NewLauncher returns a launcher backed by os/exec.
func NewLauncher() *Launcher {
	return &Launcher{exec: &osExecutor{}}
}

// CheckEnvironment reports the interpreter and framework versions to w.
// Problems are warnings, not errors: the checks never block the crawl,
// which will fail on its own terms if the framework is truly absent.
func (l *Launcher) CheckEnvironment(w io.Writer) {
	for _, check := range []struct {
		bin  string
		args []string
	}{
		{binPython, []string{"--version"}},
		{binScrapy, []string{"version"}},
	} {
		if _, err := l.exec.LookPath(check.bin); err != nil {
			fmt.Fprintf(w, "warning: %s not found on PATH\n", check.bin)
			continue
		}
		out, err := l.exec.Output(check.bin, check.args...)
		if err != nil {
			fmt.Fprintf(w, "warning: could not determine %s version: %v\n", check.bin, err)
			continue
		}
		fmt.Fprintf(w, "%s\n", out)
	}
}

// Crawl starts the named job with the configured log verbosity, streaming
// the framework's output through stdout and stderr until it exits.
func (l *Launcher) Crawl(cfg types.ScrapeConfig, stdout, stderr io.Writer) error {
	if _, err := l.exec.LookPath(binScrapy); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", binScrapy, err)
	}

	job := cfg.Job
	if job == "" {
		job = "voterlist"
	}
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "INFO"
	}

	args := []string{"crawl", job, "--loglevel", logLevel}
	if err := l.exec.RunPiped(binScrapy, args, stdout, stderr); err != nil {
		return fmt.Errorf("running %s crawl %s: %w", binScrapy, job, err)
	}
	return nil
}
