package configmanager

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
	configmanagerinterface "github.com/uelms/dbsetup/pkg/io/config-manager"
	"github.com/uelms/dbsetup/pkg/utils/notify"
	"golang.org/x/term"
)

// ErrInputClosed is returned when input ends before every field was answered.
var ErrInputClosed = errors.New("input closed before all connection details were entered")

// Prompt pairs a connection field with the question shown to the operator.
type Prompt struct {
	Field string
	Label string
}

// DefaultPrompts returns the questions in the order they are asked.
func DefaultPrompts() []Prompt {
	return []Prompt{
		{Field: v1alpha1.FieldHost, Label: "Enter Railway Host: "},
		{Field: v1alpha1.FieldPort, Label: "Enter Railway Port: "},
		{Field: v1alpha1.FieldDatabase, Label: "Enter Database Name (usually 'railway'): "},
		{Field: v1alpha1.FieldUser, Label: "Enter Username (usually 'root'): "},
		{Field: v1alpha1.FieldPassword, Label: "Enter Password: "},
	}
}

// PasswordReader reads a secret without echoing it.
type PasswordReader func() (string, error)

// ConfigManager reads v1alpha1.Params from operator input.
// Answers are taken verbatim apart from the line terminator; nothing is validated here.
type ConfigManager struct {
	Config       *v1alpha1.Params
	Writer       io.Writer
	reader       *bufio.Reader
	readPassword PasswordReader
	configLoaded bool
}

// Compile-time interface compliance verification.
var _ configmanagerinterface.ConfigManager[v1alpha1.Params] = (*ConfigManager)(nil)

// NewConfigManager creates a prompt-driven config manager.
// When input is a terminal the password is read without echo.
func NewConfigManager(input io.Reader, writer io.Writer) *ConfigManager {
	manager := &ConfigManager{
		Config: &v1alpha1.Params{},
		Writer: writer,
		reader: bufio.NewReader(input),
	}

	if file, ok := input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		manager.readPassword = func() (string, error) {
			secret, err := term.ReadPassword(int(file.Fd()))
			// The terminal swallowed the operator's newline.
			_, _ = fmt.Fprintln(writer)

			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}

			return string(secret), nil
		}
	}

	return manager
}

// WithPasswordReader replaces the no-echo password reader.
func (m *ConfigManager) WithPasswordReader(reader PasswordReader) *ConfigManager {
	m.readPassword = reader

	return m
}

// Load asks for each field in order and returns the answers.
// Returns the loaded config, either freshly loaded or previously cached.
func (m *ConfigManager) Load(_ configmanagerinterface.LoadOptions) (*v1alpha1.Params, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	for _, prompt := range DefaultPrompts() {
		notify.Promptf(m.Writer, "%s", prompt.Label)

		answer, err := m.answer(prompt.Field)
		if err != nil {
			return nil, err
		}

		err = m.Config.Set(prompt.Field, answer)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", prompt.Field, err)
		}
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) answer(field string) (string, error) {
	if field == v1alpha1.FieldPassword && m.readPassword != nil {
		return m.readPassword()
	}

	line, err := m.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read %s: %w", field, err)
		}

		if line == "" {
			return "", fmt.Errorf("%w: %s", ErrInputClosed, field)
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
