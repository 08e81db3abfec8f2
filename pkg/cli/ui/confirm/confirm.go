// Package confirm provides the acknowledgement prompt shown before a command exits.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/uelms/dbsetup/pkg/utils/notify"
	"golang.org/x/term"
)

// ExitPrompt is shown when the command waits for the operator before exiting.
const ExitPrompt = "Press Enter to exit..."

// Test override variables with mutexes for thread safety.
var (
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderOverride io.Reader

	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerOverride func() bool
)

// SetStdinReaderForTests overrides the stdin reader for testing.
// Returns a restore function that should be called to reset the override.
func SetStdinReaderForTests(reader io.Reader) func() {
	stdinReaderMu.Lock()

	previous := stdinReaderOverride
	stdinReaderOverride = reader

	stdinReaderMu.Unlock()

	return func() {
		stdinReaderMu.Lock()

		stdinReaderOverride = previous

		stdinReaderMu.Unlock()
	}
}

// SetTTYCheckerForTests overrides the TTY checker for testing.
// Returns a restore function that should be called to reset the override.
func SetTTYCheckerForTests(checker func() bool) func() {
	ttyCheckerMu.Lock()

	previous := ttyCheckerOverride
	ttyCheckerOverride = checker

	ttyCheckerMu.Unlock()

	return func() {
		ttyCheckerMu.Lock()

		ttyCheckerOverride = previous

		ttyCheckerMu.Unlock()
	}
}

// getStdinReader returns the stdin reader to use, respecting test overrides.
func getStdinReader() io.Reader {
	stdinReaderMu.RLock()
	defer stdinReaderMu.RUnlock()

	if stdinReaderOverride != nil {
		return stdinReaderOverride
	}

	return os.Stdin
}

// IsTTY returns true if stdin is connected to a terminal.
func IsTTY() bool {
	ttyCheckerMu.RLock()

	override := ttyCheckerOverride

	ttyCheckerMu.RUnlock()

	if override != nil {
		return override()
	}

	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ShouldSkipPrompt returns true if the acknowledgement prompt should be skipped.
// This happens when:
// - noPause is set, OR
// - stdin is not a TTY (scripts and pipelines)
func ShouldSkipPrompt(noPause bool) bool {
	return noPause || !IsTTY()
}

// WaitForAcknowledgement prints ExitPrompt and blocks until the operator
// submits a line or stdin is closed.
func WaitForAcknowledgement(writer io.Writer) error {
	notify.Promptf(writer, "%s", ExitPrompt)

	reader := bufio.NewReader(getStdinReader())

	_, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read acknowledgement: %w", err)
	}

	return nil
}

// Pause waits for acknowledgement unless ShouldSkipPrompt(noPause) is true.
func Pause(writer io.Writer, noPause bool) error {
	if ShouldSkipPrompt(noPause) {
		return nil
	}

	return WaitForAcknowledgement(writer)
}
