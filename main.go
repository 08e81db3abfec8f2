// Package main is the entry point for the dbsetup application.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/uelms/dbsetup/internal/buildmeta"
	"github.com/uelms/dbsetup/pkg/cli/cmd"
	"github.com/uelms/dbsetup/pkg/cli/ui/errorhandler"
	"github.com/uelms/dbsetup/pkg/utils/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			panicMessage := fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack())
			notify.WriteMessage(notify.Message{
				Type:    notify.ErrorType,
				Content: panicMessage,
				Writer:  errWriter,
			})

			exitCode = 1
		}
	}()

	exitCode = runner(args)

	return exitCode
}

func runWithArgs(args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	return exitStatus(rootCmd.ErrOrStderr(), cmd.Execute(rootCmd))
}

// exitStatus prints err unless the command already reported it and maps it to a process status.
func exitStatus(errWriter io.Writer, err error) int {
	if err == nil {
		return 0
	}

	if !errorhandler.IsReported(err) {
		notify.Errorf(errWriter, "%v", err)
	}

	return 1
}
