package configmanager

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
	configmanagerinterface "github.com/uelms/dbsetup/pkg/io/config-manager"
	"github.com/uelms/dbsetup/pkg/utils/envvar"
	"github.com/uelms/dbsetup/pkg/utils/notify"
)

const (
	// DefaultConfigName is the base name of the config file searched when no path is given.
	DefaultConfigName = "railway"
	// DefaultConfigFile is the file name written by `dbsetup init` and suggested in hints.
	DefaultConfigFile = DefaultConfigName + ".yaml"
	// EnvPrefix prefixes the environment variables that override config file values.
	EnvPrefix = "RAILWAY"

	homeConfigDir = ".uelms"
)

// ConfigManager loads v1alpha1.Params from a config file, the environment and flags.
type ConfigManager struct {
	Viper           *viper.Viper
	Config          *v1alpha1.Params
	Writer          io.Writer
	configFile      string
	configLoaded    bool
	configFileFound bool
}

// Compile-time interface compliance verification.
var _ configmanagerinterface.ConfigManager[v1alpha1.Params] = (*ConfigManager)(nil)

// NewConfigManager creates a config manager reading configFile, or searching for
// railway.{yaml,yml,json,toml} when configFile is empty.
func NewConfigManager(writer io.Writer, configFile string) *ConfigManager {
	return &ConfigManager{
		Viper:      InitializeViper(configFile),
		Config:     &v1alpha1.Params{},
		Writer:     writer,
		configFile: configFile,
	}
}

// NewCommandConfigManager constructs a ConfigManager bound to the provided Cobra command.
// Connection flags are registered on the command and take precedence over the
// environment and the config file.
func NewCommandConfigManager(cmd *cobra.Command, configFile string) *ConfigManager {
	manager := NewConfigManager(cmd.OutOrStdout(), configFile)
	manager.AddFlagsFromFields(cmd)

	return manager
}

// InitializeViper creates a Viper instance with config paths and environment handling.
func InitializeViper(configFile string) *viper.Viper {
	viperInstance := viper.New()

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName(DefaultConfigName)
		viperInstance.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperInstance.AddConfigPath(filepath.Join(home, homeConfigDir))
		}
	}

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	for _, field := range v1alpha1.Fields() {
		// BindEnv only fails when called without a key.
		_ = viperInstance.BindEnv(field)
	}

	return viperInstance
}

// SetConfigFile points the manager at an explicit config file. An empty path
// keeps the default search. It has no effect once the config is loaded.
func (m *ConfigManager) SetConfigFile(configFile string) {
	if configFile == "" || m.configLoaded {
		return
	}

	m.configFile = configFile
	m.Viper.SetConfigFile(configFile)
}

// ConfigFileUsed returns the config file that was read, or the file operators
// should create when none was found.
func (m *ConfigManager) ConfigFileUsed() string {
	if used := m.Viper.ConfigFileUsed(); used != "" {
		return used
	}

	if m.configFile != "" {
		return m.configFile
	}

	return DefaultConfigFile
}

// Load reads, expands and validates the connection parameters.
// Returns the loaded config, either freshly loaded or previously cached.
// Configuration priority: config file < environment variables < flags.
func (m *ConfigManager) Load(opts configmanagerinterface.LoadOptions) (*v1alpha1.Params, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	if !opts.Silent {
		notify.Activityf(m.Writer, "loading configuration")
	}

	err := m.readConfig(opts.Silent)
	if err != nil {
		return nil, err
	}

	err = m.unmarshal()
	if err != nil {
		return nil, err
	}

	if !opts.Silent && envvar.HasReference(m.Config.Password) {
		notify.Warningf(m.Writer, "password contains a ${...} sequence, it is used as written")
	}

	err = Validate(m.Config)
	if err != nil {
		if !m.configFileFound {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfigFileNotFound, m.ConfigFileUsed(), err)
		}

		return nil, err
	}

	if !opts.Silent {
		m.notifyLoadingComplete(opts)
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig(silent bool) error {
	err := m.Viper.ReadInConfig()
	if err == nil {
		m.configFileFound = true

		if !silent {
			notify.Infof(m.Writer, "using config file %s", m.Viper.ConfigFileUsed())
		}

		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if m.configFile != "" {
		return fmt.Errorf("%w: %s", ErrConfigFileNotFound, m.configFile)
	}

	m.configFileFound = false

	if !silent {
		notify.Warningf(m.Writer, "no config file found, reading %s_* environment variables", EnvPrefix)
	}

	return nil
}

func (m *ConfigManager) unmarshal() error {
	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			expandEnvDecodeHook(),
		)
	}

	err := m.Viper.Unmarshal(m.Config, decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return nil
}

// expandEnvDecodeHook expands ${VAR} references in the string settings while
// decoding. The password is taken as written.
func expandEnvDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, _ reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.Map {
			return data, nil
		}

		settings, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}

		expanded := make(map[string]any, len(settings))

		for key, value := range settings {
			raw, isString := value.(string)
			if !isString || strings.EqualFold(key, v1alpha1.FieldPassword) {
				expanded[key] = value

				continue
			}

			expanded[key] = envvar.Expand(raw)
		}

		return expanded, nil
	}
}

func (m *ConfigManager) notifyLoadingComplete(opts configmanagerinterface.LoadOptions) {
	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "configuration loaded",
		Timer:   opts.Timer,
		Writer:  m.Writer,
	})

	redacted := m.Config.Redacted()

	notify.Infof(m.Writer, "Host: %s\nPort: %s\nDatabase: %s\nUser: %s\nPassword: %s",
		redacted.Host, redacted.Port, redacted.Database, redacted.User, redacted.Password)
}
