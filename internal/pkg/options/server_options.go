package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ServerRunOptions configures the HTTP serving side.
type ServerRunOptions struct {
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`
	BindPort    int    `json:"bind-port"    mapstructure:"bind-port"`
	Mode        string `json:"mode"         mapstructure:"mode"`
	Profiling   bool   `json:"profiling"    mapstructure:"profiling"`
}

func NewServerRunOptions() *ServerRunOptions {
	return &ServerRunOptions{
		BindAddress: "127.0.0.1",
		BindPort:    11790,
		Mode:        "release",
		Profiling:   false,
	}
}

func (o *ServerRunOptions) Validate() []error {
	var errs []error
	if o.BindPort < 1 || o.BindPort > 65535 {
		errs = append(errs, fmt.Errorf("serving.bind-port %d must be between 1 and 65535", o.BindPort))
	}
	if o.Mode != "release" && o.Mode != "debug" && o.Mode != "test" {
		errs = append(errs, fmt.Errorf("serving.mode %q must be one of release, debug, test", o.Mode))
	}
	return errs
}

// Addr returns the host:port string to listen on.
func (o *ServerRunOptions) Addr() string {
	return fmt.Sprintf("%s:%d", o.BindAddress, o.BindPort)
}

func (o *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BindAddress, "serving.bind-address", o.BindAddress, "IP address to listen on.")
	fs.IntVar(&o.BindPort, "serving.bind-port", o.BindPort, "Port to listen on.")
	fs.StringVar(&o.Mode, "serving.mode", o.Mode, "Gin mode: release, debug or test.")
	fs.BoolVar(&o.Profiling, "serving.profiling", o.Profiling, "Expose pprof profiling routes under /debug/pprof.")
}
