// Package provisionerrors defines the error taxonomy of a provisioning run.
//
// Every failure is classified into one of four categories so the command
// layer can label it and print the matching remediation hints. Errors are
// classified with errors.Is against the sentinels below; anything that wraps
// none of them is unexpected.
package provisionerrors

import "errors"

// ErrConfiguration marks a required connection field that is absent, left as a
// placeholder, or cannot be coerced (e.g. a non-numeric port).
var ErrConfiguration = errors.New("configuration error")

// ErrConnection marks a network, authentication or driver failure while opening
// the database connection.
var ErrConnection = errors.New("connection error")

// ErrStatement marks a failure while executing, committing or verifying the
// provisioning statements.
var ErrStatement = errors.New("statement error")

// Category classifies a provisioning failure.
type Category int

const (
	// CategoryUnexpected is any failure that is not otherwise classified.
	CategoryUnexpected Category = iota
	// CategoryConfiguration is a configuration failure; nothing was sent to the database.
	CategoryConfiguration
	// CategoryConnection is a failure reaching or authenticating against the database.
	CategoryConnection
	// CategoryStatement is a failure running SQL on an open connection.
	CategoryStatement
)

// Classify returns the category of err.
func Classify(err error) Category {
	switch {
	case errors.Is(err, ErrConfiguration):
		return CategoryConfiguration
	case errors.Is(err, ErrConnection):
		return CategoryConnection
	case errors.Is(err, ErrStatement):
		return CategoryStatement
	default:
		return CategoryUnexpected
	}
}

// Label returns the marker printed in front of the failure message.
func (c Category) Label() string {
	switch c {
	case CategoryConfiguration:
		return "CONFIGURATION ERROR"
	case CategoryConnection, CategoryStatement:
		return "DATABASE ERROR"
	case CategoryUnexpected:
		return "UNEXPECTED ERROR"
	default:
		return "UNEXPECTED ERROR"
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryConfiguration:
		return "configuration"
	case CategoryConnection:
		return "connection"
	case CategoryStatement:
		return "statement"
	case CategoryUnexpected:
		return "unexpected"
	default:
		return "unexpected"
	}
}

// Remediation returns the operator hints for a failure of category c.
// configFile is the config file the file-backed variant reads; pass an empty
// string for the interactive variant.
func Remediation(c Category, configFile string) []string {
	if configFile != "" {
		return []string{
			"Edit " + configFile + " with your Railway database details",
			"Run this command again",
		}
	}

	switch c {
	case CategoryConnection, CategoryStatement, CategoryConfiguration:
		return []string{"Check your connection details and try again"}
	case CategoryUnexpected:
		return nil
	default:
		return nil
	}
}
