package options

import (
	"github.com/spf13/pflag"
)

// StoreOptions configures transcript persistence.
type StoreOptions struct {
	// Enabled toggles transcript persistence entirely.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Path is the BoltDB file location.
	Path string `json:"path" mapstructure:"path"`
}

func NewStoreOptions() *StoreOptions {
	return &StoreOptions{
		Enabled: true,
		Path:    "data/docschat.db",
	}
}

func (o *StoreOptions) Validate() []error {
	return nil
}

func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "store.enabled", o.Enabled, "Persist chat transcripts to BoltDB.")
	fs.StringVar(&o.Path, "store.path", o.Path, "BoltDB file path for transcripts.")
}
