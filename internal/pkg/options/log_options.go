package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// LogOptions configures the shared logger.
type LogOptions struct {
	Level string `json:"level" mapstructure:"level"`
	Path  string `json:"path"  mapstructure:"path"`
}

func NewLogOptions() *LogOptions {
	return &LogOptions{
		Level: "info",
		Path:  "",
	}
}

func (o *LogOptions) Validate() []error {
	switch o.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return []error{fmt.Errorf("log.level %q must be one of debug, info, warn, error", o.Level)}
	}
}

func (o *LogOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level: debug, info, warn or error.")
	fs.StringVar(&o.Path, "log.path", o.Path, "Log file path; empty logs to stderr only.")
}
