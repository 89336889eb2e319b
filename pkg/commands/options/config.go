package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyhub/pkg/store"
)

// ConfigOptions select the config file and override a few of its keys.
type ConfigOptions struct {
	File     string
	Backend  string
	LogLevel string
}

func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.File, "config", "",
		"Config file, default .studyhub.yaml in $STUDYHUB_CONFIG_PATH, ./ or $HOME.")
	cmd.PersistentFlags().StringVar(&o.Backend, "backend", "",
		Wrap80("Storage backend, overrides the config. One of "+joinBackends()+"."))
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level, overrides the config. One of debug, info, warn, error.")
}

func joinBackends() string {
	out := ""
	for i, b := range store.Backends() {
		if i > 0 {
			out += ", "
		}
		out += b
	}
	return out
}
