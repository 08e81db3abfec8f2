// Package scaffolder writes the starter connection configuration file.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
	"github.com/uelms/dbsetup/pkg/io/generator"
	yamlgenerator "github.com/uelms/dbsetup/pkg/io/generator/yaml"
	"github.com/uelms/dbsetup/pkg/utils/notify"
)

// ErrConfigGeneration wraps failures when creating the connection configuration.
var ErrConfigGeneration = errors.New("failed to generate connection configuration")

const headComment = `Railway database connection used by "dbsetup auto".
Replace every YOUR_..._HERE value with the details shown under
MySQL > Connect in the Railway dashboard.
Values may reference environment variables, for example ${RAILWAY_PASSWORD}.`

// FieldComments documents each key of the generated file.
func FieldComments() map[string]string {
	return map[string]string{
		v1alpha1.FieldHost:     "Public host name, for example containers-us-west-1.railway.app",
		v1alpha1.FieldPort:     "Public TCP port, for example 6543",
		v1alpha1.FieldDatabase: "Database name, usually railway",
		v1alpha1.FieldUser:     "Database user, usually root",
		v1alpha1.FieldPassword: "Password of the database user",
	}
}

// Scaffolder generates the connection configuration file.
type Scaffolder struct {
	Config          v1alpha1.Params
	ConfigGenerator generator.Generator[v1alpha1.Params, yamlgenerator.Options]
	Writer          io.Writer
}

// NewScaffolder creates a scaffolder that renders cfg as YAML.
// Use v1alpha1.NewPlaceholderParams for a template the operator fills in.
func NewScaffolder(cfg v1alpha1.Params, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Config:          cfg,
		ConfigGenerator: yamlgenerator.NewGenerator[v1alpha1.Params](),
		Writer:          writer,
	}
}

// Scaffold writes the configuration to output. An existing file is only
// replaced when force is true.
func (s *Scaffolder) Scaffold(output string, force bool) error {
	_, err := s.ConfigGenerator.Generate(s.Config, yamlgenerator.Options{
		Output:        output,
		Force:         force,
		HeadComment:   headComment,
		FieldComments: FieldComments(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigGeneration, err)
	}

	notify.Generatef(s.Writer, "created '%s'", filepath.Base(output))
	notify.Infof(s.Writer, "edit %s, then run 'dbsetup auto'", output)

	return nil
}
