package di

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	databaseprovisioner "github.com/uelms/dbsetup/pkg/svc/provisioner/database"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveLogger retrieves the diagnostic logger from the injector.
func ResolveLogger(injector Injector) (*logrus.Logger, error) {
	log, err := do.Invoke[*logrus.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return log, nil
}

// ResolveConnector retrieves the database connector from the injector.
func ResolveConnector(injector Injector) (databaseprovisioner.Connector, error) {
	connector, err := do.Invoke[databaseprovisioner.Connector](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve connector dependency: %w", err)
	}

	return connector, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
