package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
	"github.com/uelms/dbsetup/pkg/cli/flags"
	"github.com/uelms/dbsetup/pkg/cli/ui/confirm"
	"github.com/uelms/dbsetup/pkg/cli/ui/errorhandler"
	runtime "github.com/uelms/dbsetup/pkg/di"
	configmanager "github.com/uelms/dbsetup/pkg/io/config-manager"
	databaseprovisioner "github.com/uelms/dbsetup/pkg/svc/provisioner/database"
	provisionerrors "github.com/uelms/dbsetup/pkg/svc/provisioner/errors"
	"github.com/uelms/dbsetup/pkg/utils/notify"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

const (
	setupEmoji     = "🗄️"
	hintWrapColumn = 80
)

// setupRun describes one variant of the setup commands.
type setupRun struct {
	title  string
	loader configmanager.ConfigManager[v1alpha1.Params]
	// configFile names the file to mention in remediation hints. Nil for the interactive variant.
	configFile func() string
}

// runSetup provisions the database and reports the outcome on the command output.
// The failure is printed here; the returned error only carries the exit status.
func runSetup(cmd *cobra.Command, runtimeContainer *runtime.Runtime, run setupRun) error {
	//nolint:wrapcheck // Errors are already wrapped by the resolvers or reported.
	return runtimeContainer.Invoke(func(injector runtime.Injector) error {
		return runtime.WithTimer(run.handle)(cmd, injector)
	})
}

func (run setupRun) handle(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
	connector, err := runtime.ResolveConnector(injector)
	if err != nil {
		return err
	}

	log, err := runtime.ResolveLogger(injector)
	if err != nil {
		return err
	}

	if flags.IsVerbose(cmd) {
		log.SetLevel(logrus.DebugLevel)
	}

	tmr.Start()

	out := cmd.OutOrStdout()
	outputTimer := flags.MaybeTimer(cmd, tmr)

	notify.Titlef(out, setupEmoji, "%s", run.title)

	prov := databaseprovisioner.NewProvisioner(
		connector,
		databaseprovisioner.WithWriter(out),
		databaseprovisioner.WithLogger(log),
		databaseprovisioner.WithTimer(outputTimer),
		databaseprovisioner.WithConnectTimeout(flags.ConnectTimeout(cmd)),
	)

	summary, runErr := prov.Run(cmd.Context(), run.loader)
	if runErr != nil {
		log.WithError(runErr).Debug("setup failed")

		configFile := ""
		if run.configFile != nil {
			configFile = run.configFile()
		}

		reportFailure(out, runErr, configFile)
	} else {
		databaseprovisioner.WriteSummary(out, summary, outputTimer)
	}

	pauseErr := confirm.Pause(out, flags.IsNoPause(cmd))

	if runErr != nil {
		return errorhandler.Reported(runErr)
	}

	return pauseErr
}

// reportFailure prints the labelled failure and the remediation hints.
func reportFailure(writer io.Writer, err error, configFile string) {
	category := provisionerrors.Classify(err)

	notify.Errorf(writer, "%s: %v", category.Label(), err)

	hints := provisionerrors.Remediation(category, configFile)
	if len(hints) == 0 {
		return
	}

	var content strings.Builder

	content.WriteString("setup failed, please:")

	for i, hint := range hints {
		content.WriteString(fmt.Sprintf("\n%d. %s", i+1, hint))
	}

	notify.WriteMessage(notify.Message{
		Type:      notify.WarningType,
		Content:   content.String(),
		Writer:    writer,
		WrapWidth: hintWrapColumn,
	})
}
