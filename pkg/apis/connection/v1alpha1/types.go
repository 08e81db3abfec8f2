package v1alpha1

import (
	"fmt"
	"strconv"
	"strings"
)

// Field keys of the connection parameter record, in canonical order.
const (
	FieldHost     = "host"
	FieldPort     = "port"
	FieldDatabase = "database"
	FieldUser     = "user"
	FieldPassword = "password"
)

const (
	minPort = 1
	maxPort = 65535

	redactedPassword = "********"
)

// Params is the five-field record needed to open a database connection.
// All values are kept as strings the way the operator entered them; the port
// is only coerced when a connection is about to be opened.
type Params struct {
	Host     string `json:"host"     mapstructure:"host"     yaml:"host"`
	Port     string `json:"port"     mapstructure:"port"     yaml:"port"`
	Database string `json:"database" mapstructure:"database" yaml:"database"`
	User     string `json:"user"     mapstructure:"user"     yaml:"user"`
	Password string `json:"password" mapstructure:"password" yaml:"password"`
}

// Fields returns the parameter keys in the order they are collected and validated.
func Fields() []string {
	return []string{FieldHost, FieldPort, FieldDatabase, FieldUser, FieldPassword}
}

// Placeholder returns the sentinel value that marks a field as not filled in,
// e.g. YOUR_HOST_HERE for the host field.
func Placeholder(field string) string {
	return "YOUR_" + strings.ToUpper(field) + "_HERE"
}

// NewPlaceholderParams returns a Params record with every field set to its sentinel.
func NewPlaceholderParams() *Params {
	return &Params{
		Host:     Placeholder(FieldHost),
		Port:     Placeholder(FieldPort),
		Database: Placeholder(FieldDatabase),
		User:     Placeholder(FieldUser),
		Password: Placeholder(FieldPassword),
	}
}

// Get returns the value stored under the given field key.
func (p *Params) Get(field string) (string, error) {
	switch field {
	case FieldHost:
		return p.Host, nil
	case FieldPort:
		return p.Port, nil
	case FieldDatabase:
		return p.Database, nil
	case FieldUser:
		return p.User, nil
	case FieldPassword:
		return p.Password, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// Set stores value under the given field key.
func (p *Params) Set(field, value string) error {
	switch field {
	case FieldHost:
		p.Host = value
	case FieldPort:
		p.Port = value
	case FieldDatabase:
		p.Database = value
	case FieldUser:
		p.User = value
	case FieldPassword:
		p.Password = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// PortNumber coerces Port to an integer. Surrounding whitespace is ignored.
func (p *Params) PortNumber() (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(p.Port))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, p.Port)
	}

	if port < minPort || port > maxPort {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidPort, port, minPort, maxPort)
	}

	return port, nil
}

// Redacted returns a copy with the password masked so it can be printed or logged.
func (p *Params) Redacted() Params {
	out := *p
	if out.Password != "" {
		out.Password = redactedPassword
	}

	return out
}
