package configmanager

import (
	"github.com/spf13/cobra"
	"github.com/uelms/dbsetup/pkg/apis/connection/v1alpha1"
)

// FieldSelector describes a connection field exposed as a command flag.
type FieldSelector struct {
	Field       string
	Description string
}

// DefaultFieldSelectors returns the flag descriptions for every connection field.
func DefaultFieldSelectors() []FieldSelector {
	return []FieldSelector{
		{Field: v1alpha1.FieldHost, Description: "Database host (overrides config file and RAILWAY_HOST)"},
		{Field: v1alpha1.FieldPort, Description: "Database port (overrides config file and RAILWAY_PORT)"},
		{Field: v1alpha1.FieldDatabase, Description: "Database name (overrides config file and RAILWAY_DATABASE)"},
		{Field: v1alpha1.FieldUser, Description: "Database user (overrides config file and RAILWAY_USER)"},
		{Field: v1alpha1.FieldPassword, Description: "Database password (overrides config file and RAILWAY_PASSWORD)"},
	}
}

// AddFlagsFromFields registers one string flag per connection field and binds
// it to Viper. A flag only takes effect when it was set explicitly.
func (m *ConfigManager) AddFlagsFromFields(cmd *cobra.Command) {
	for _, selector := range DefaultFieldSelectors() {
		if cmd.Flags().Lookup(selector.Field) == nil {
			cmd.Flags().String(selector.Field, "", selector.Description)
		}

		// BindPFlag only fails for a nil flag, which cannot happen after the lookup above.
		_ = m.Viper.BindPFlag(selector.Field, cmd.Flags().Lookup(selector.Field))
	}
}
