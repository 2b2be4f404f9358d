package config

import (
	"github.com/moralisweb3/docschat/internal/docschat/options"
)

// Config is the running configuration structure of the docschat service.
type Config struct {
	*options.Options
}

// CreateConfigFromOptions creates a running configuration instance based
// on the given (already validated) command line or configuration file options.
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}
