package options

import (
	"github.com/spf13/pflag"

	genericoptions "github.com/moralisweb3/docschat/internal/pkg/options"
	"github.com/moralisweb3/docschat/pkg/utils/json"
)

// Options is the full flag/config surface of the docschat server.
type Options struct {
	GenericServerRunOptions *genericoptions.ServerRunOptions `json:"serving" mapstructure:"serving"`
	ModelOptions            *genericoptions.ModelOptions     `json:"models"  mapstructure:"models"`
	ChatOptions             *genericoptions.ChatOptions      `json:"chat"    mapstructure:"chat"`
	StoreOptions            *genericoptions.StoreOptions     `json:"store"   mapstructure:"store"`
	LogOptions              *genericoptions.LogOptions       `json:"log"     mapstructure:"log"`
}

func NewOptions() *Options {
	return &Options{
		GenericServerRunOptions: genericoptions.NewServerRunOptions(),
		ModelOptions:            genericoptions.NewModelOptions(),
		ChatOptions:             genericoptions.NewChatOptions(),
		StoreOptions:            genericoptions.NewStoreOptions(),
		LogOptions:              genericoptions.NewLogOptions(),
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.GenericServerRunOptions.AddFlags(fs)
	o.ModelOptions.AddFlags(fs)
	o.ChatOptions.AddFlags(fs)
	o.StoreOptions.AddFlags(fs)
	o.LogOptions.AddFlags(fs)
}

func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.GenericServerRunOptions.Validate()...)
	errs = append(errs, o.ModelOptions.Validate()...)
	errs = append(errs, o.ChatOptions.Validate()...)
	errs = append(errs, o.StoreOptions.Validate()...)
	errs = append(errs, o.LogOptions.Validate()...)
	return errs
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
