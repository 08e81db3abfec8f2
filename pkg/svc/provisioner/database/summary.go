package databaseprovisioner

import (
	"io"

	"github.com/uelms/dbsetup/pkg/utils/notify"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

// Summary is the outcome of a successful provisioning run.
type Summary struct {
	Host       string
	Port       int
	Database   string
	AdminCount int
	Username   string
	Password   string
}

// WriteSummary prints the human-readable result of a run. The output is
// informational and not meant to be parsed.
func WriteSummary(writer io.Writer, summary *Summary, tmr timer.Timer) {
	notify.SuccessWithTimerf(writer, tmr, "database setup completed")
	notify.Infof(writer, "found %d admin user(s)", summary.AdminCount)
	notify.Infof(writer, "default login credentials:\nUsername: %s\nPassword: %s",
		summary.Username, summary.Password)
	notify.Infof(writer, "you can now start the University Management System")
}
