// Package app assembles the docschat server command line.
package app

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moralisweb3/docschat/internal/docschat"
	"github.com/moralisweb3/docschat/internal/docschat/config"
	"github.com/moralisweb3/docschat/internal/docschat/options"
	"github.com/moralisweb3/docschat/pkg/logger"
)

// NewDocschatCommand builds the root command for the docschat server.
func NewDocschatCommand() *cobra.Command {
	opts := options.NewOptions()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "docschat",
		Short: "Streaming chat backend for the Moralis docs",
		Long: heredoc.Doc(`
			docschat serves the documentation AI chat: it proxies conversations
			to an OpenAI-compatible completion service, streams the reply back
			as raw text, and lets the model look things up in the docs corpus
			through a fixed set of tools.
		`),
		Example: heredoc.Doc(`
			# Run with flags only
			docschat --models.model=gpt-4o-mini --serving.bind-port=11790

			# Run with a config file
			docschat -c configs/docschat.yaml
		`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("read config file %q: %w", cfgFile, err)
				}
			}
			viper.SetEnvPrefix("DOCSCHAT")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
			viper.AutomaticEnv()
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := viper.Unmarshal(opts); err != nil {
				return fmt.Errorf("unmarshal configuration: %w", err)
			}

			if errs := opts.Validate(); len(errs) != 0 {
				return fmt.Errorf("invalid configuration: %v", errs)
			}

			logger.SetLevel(opts.LogOptions.Level)
			if err := logger.InitLog(opts.LogOptions.Path); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			defer logger.FlushLog()

			logger.Info("[Docschat] starting with options: %s", opts)

			cfg, err := config.CreateConfigFromOptions(opts)
			if err != nil {
				return err
			}

			return docschat.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to the docschat configuration file.")
	opts.AddFlags(cmd.Flags())

	return cmd
}
