package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uelms/dbsetup/pkg/cli/ui/errorhandler"
)

var errMain = errors.New("boom")

func TestRunSafelyReturnsRunnerCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely([]string{"a"}, func(args []string) int {
		assert.Equal(t, []string{"a"}, args)

		return 3
	}, &errOut)

	assert.Equal(t, 3, code)
	assert.Empty(t, errOut.String())
}

func TestRunSafelyRecoversPanics(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely(nil, func([]string) int {
		panic("kaboom")
	}, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "panic recovered: kaboom")
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantPrint bool
	}{
		{name: "success", err: nil, wantCode: 0},
		{name: "plain error is printed", err: errMain, wantCode: 1, wantPrint: true},
		{
			name:     "reported error is not printed twice",
			err:      fmt.Errorf("command execution failed: %w", errorhandler.Reported(errMain)),
			wantCode: 1,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var errOut bytes.Buffer

			assert.Equal(t, testCase.wantCode, exitStatus(&errOut, testCase.err))

			if testCase.wantPrint {
				assert.Contains(t, errOut.String(), "boom")
			} else {
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestRunWithArgsHelp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, runWithArgs([]string{"init", "--help"}))
}
