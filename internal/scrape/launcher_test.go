// Copyright Civic Data Works, 2026. All rights reserved.

package scrape

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/district-tools/pkg/types"
)

// fakeExecutor implements executor for testing. It records invocations and
// serves canned lookups, outputs, and run results.
type fakeExecutor struct {
	missing map[string]bool
	outputs map[string]string
	runErr  error
	ranName string
	ranArgs []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.missing[file] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) Output(name string, args ...string) (string, error) {
	if out, ok := f.outputs[name]; ok {
		return out, nil
	}
	return "", errors.New("no output configured")
}

func (f *fakeExecutor) RunPiped(name string, args []string, stdout, stderr io.Writer) error {
	f.ranName = name
	f.ranArgs = args
	return f.runErr
}

func TestCheckEnvironmentReportsVersions(t *testing.T) {
	exec := &fakeExecutor{
		outputs: map[string]string{
			"python3": "Python 3.11.2",
			"scrapy":  "Scrapy 2.11.0",
		},
	}
	l := &Launcher{exec: exec}

	var out bytes.Buffer
	l.CheckEnvironment(&out)

	assert.Contains(t, out.String(), "Python 3.11.2")
	assert.Contains(t, out.String(), "Scrapy 2.11.0")
	assert.NotContains(t, out.String(), "warning")
}

func TestCheckEnvironmentWarnsButNeverFails(t *testing.T) {
	exec := &fakeExecutor{missing: map[string]bool{"python3": true, "scrapy": true}}
	l := &Launcher{exec: exec}

	var out bytes.Buffer
	l.CheckEnvironment(&out)

	warnings := strings.Count(out.String(), "warning:")
	assert.Equal(t, 2, warnings, "each missing binary produces one warning")
}

func TestCrawlDelegatesToFramework(t *testing.T) {
	exec := &fakeExecutor{}
	l := &Launcher{exec: exec}

	err := l.Crawl(types.ScrapeConfig{Job: "voterlist", LogLevel: "INFO"}, io.Discard, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "scrapy", exec.ranName)
	assert.Equal(t, []string{"crawl", "voterlist", "--loglevel", "INFO"}, exec.ranArgs)
}

func TestCrawlDefaults(t *testing.T) {
	exec := &fakeExecutor{}
	l := &Launcher{exec: exec}

	require.NoError(t, l.Crawl(types.ScrapeConfig{}, io.Discard, io.Discard))
	assert.Equal(t, []string{"crawl", "voterlist", "--loglevel", "INFO"}, exec.ranArgs)
}

func TestCrawlMissingFramework(t *testing.T) {
	exec := &fakeExecutor{missing: map[string]bool{"scrapy": true}}
	l := &Launcher{exec: exec}

	err := l.Crawl(types.ScrapeConfig{Job: "voterlist"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scrapy not found")
}

func TestCrawlPropagatesFrameworkFailure(t *testing.T) {
	exec := &fakeExecutor{runErr: errors.New("exit status 2")}
	l := &Launcher{exec: exec}

	err := l.Crawl(types.ScrapeConfig{Job: "voterlist"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running scrapy crawl voterlist")
}
