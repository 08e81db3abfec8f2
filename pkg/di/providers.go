package di

import (
	"os"

	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	mysqlconnector "github.com/uelms/dbsetup/pkg/svc/connector/mysql"
	databaseprovisioner "github.com/uelms/dbsetup/pkg/svc/provisioner/database"
	"github.com/uelms/dbsetup/pkg/utils/logger"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by root command and tests.
// It registers default implementations for timer, logger and database connector.
func NewRuntime() *Runtime {
	return New(
		ProvideTimer,
		ProvideLogger,
		ProvideConnector,
	)
}

// ProvideTimer registers the timer dependency with the injector.
func ProvideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// ProvideLogger registers a stderr logger. Commands raise its level for --verbose.
func ProvideLogger(i Injector) error {
	do.Provide(i, func(Injector) (*logrus.Logger, error) {
		return logger.New(os.Stderr, false), nil
	})

	return nil
}

// ProvideConnector registers the MySQL connector.
func ProvideConnector(i Injector) error {
	do.Provide(i, func(Injector) (databaseprovisioner.Connector, error) {
		return mysqlconnector.NewConnector(), nil
	})

	return nil
}
