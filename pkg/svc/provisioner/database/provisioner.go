package databaseprovisioner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
	configmanager "github.com/uelms/dbsetup/pkg/io/config-manager"
	provisionerrors "github.com/uelms/dbsetup/pkg/svc/provisioner/errors"
	"github.com/uelms/dbsetup/pkg/utils/logger"
	"github.com/uelms/dbsetup/pkg/utils/notify"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

// Provisioner applies the application schema through a Connector.
type Provisioner struct {
	connector      Connector
	writer         io.Writer
	log            logrus.FieldLogger
	timer          timer.Timer
	connectTimeout time.Duration
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithWriter sets the destination of progress messages. Defaults to io.Discard.
func WithWriter(writer io.Writer) Option {
	return func(p *Provisioner) {
		p.writer = writer
	}
}

// WithLogger sets the diagnostic logger. Defaults to a logger that discards entries.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Provisioner) {
		p.log = log
	}
}

// WithTimer passes a timer to the parameter loader so its success message includes timing.
func WithTimer(tmr timer.Timer) Option {
	return func(p *Provisioner) {
		p.timer = tmr
	}
}

// WithConnectTimeout bounds dialing and network I/O of the session. Zero means no bound.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(p *Provisioner) {
		p.connectTimeout = timeout
	}
}

// NewProvisioner creates a provisioner that opens sessions through connector.
func NewProvisioner(connector Connector, opts ...Option) *Provisioner {
	prov := &Provisioner{
		connector: connector,
		writer:    io.Discard,
		log:       logger.Discard(),
	}

	for _, opt := range opts {
		opt(prov)
	}

	return prov
}

// Run loads the connection parameters from loader and provisions the database.
// A loader failure is a configuration error and no connection is attempted.
func (p *Provisioner) Run(
	ctx context.Context,
	loader configmanager.ConfigManager[v1alpha1.Params],
) (*Summary, error) {
	params, err := loader.Load(configmanager.LoadOptions{Timer: p.timer})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provisionerrors.ErrConfiguration, err)
	}

	return p.Provision(ctx, params)
}

// Provision opens one session with params, applies the schema statements in
// order, commits once, and counts the administrator rows.
// The session is closed before Provision returns whenever Connect succeeded.
func (p *Provisioner) Provision(ctx context.Context, params *v1alpha1.Params) (*Summary, error) {
	port, err := params.PortNumber()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provisionerrors.ErrConfiguration, err)
	}

	notify.Activityf(p.writer, "connecting to database")
	redacted := params.Redacted()
	p.log.WithFields(logrus.Fields{
		"host":     redacted.Host,
		"port":     port,
		"database": redacted.Database,
		"user":     redacted.User,
		"password": redacted.Password,
	}).Debug("opening database session")

	session, err := p.connector.Connect(ctx, ConnectOptions{
		Host:     params.Host,
		Port:     port,
		Database: params.Database,
		User:     params.User,
		Password: params.Password,
		Timeout:  p.connectTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provisionerrors.ErrConnection, err)
	}

	defer p.closeSession(session)

	err = p.applySchema(ctx, session)
	if err != nil {
		return nil, err
	}

	count, err := session.CountRows(ctx, VerifyAdminQuery, AdminRole)
	if err != nil {
		return nil, fmt.Errorf("%w: verify admin users: %w", provisionerrors.ErrStatement, err)
	}

	p.log.WithField("admins", count).Debug("verified admin users")

	return &Summary{
		Host:       params.Host,
		Port:       port,
		Database:   params.Database,
		AdminCount: count,
		Username:   AdminUsername,
		Password:   AdminPassword,
	}, nil
}

func (p *Provisioner) applySchema(ctx context.Context, session Session) error {
	for _, step := range Steps() {
		notify.Activityf(p.writer, "%s", step.Activity)

		started := time.Now()

		err := session.Exec(ctx, step.Statement)
		if err != nil {
			p.log.WithError(err).WithField("step", step.Name).Debug("statement failed")

			return fmt.Errorf("%w: %s: %w", provisionerrors.ErrStatement, step.Name, err)
		}

		p.log.WithFields(logrus.Fields{
			"step":    step.Name,
			"elapsed": time.Since(started),
		}).Debug("statement executed")
	}

	err := session.Commit(ctx)
	if err != nil {
		return fmt.Errorf("%w: commit: %w", provisionerrors.ErrStatement, err)
	}

	p.log.Debug("schema committed")

	return nil
}

func (p *Provisioner) closeSession(session Session) {
	err := session.Close()
	if err != nil {
		p.log.WithError(err).Warn("failed to close database session")

		return
	}

	p.log.Debug("database session closed")
}
