package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ModelOptions configures the completion-service provider. A single
// OpenAI-compatible endpoint is supported.
type ModelOptions struct {
	BaseURL     string  `json:"base-url"    mapstructure:"base-url"`
	APIKey      string  `json:"api-key"     mapstructure:"api-key"`
	Model       string  `json:"model"       mapstructure:"model"`
	MaxTokens   int     `json:"max-tokens"  mapstructure:"max-tokens"`
	Temperature float32 `json:"temperature" mapstructure:"temperature"`
}

func NewModelOptions() *ModelOptions {
	return &ModelOptions{
		BaseURL:   "https://api.openai.com/v1",
		APIKey:    "${OPENAI_API_KEY}",
		Model:     "gpt-4o-mini",
		MaxTokens: 4096,
	}
}

func (o *ModelOptions) Validate() []error {
	var errs []error
	if o.Model == "" {
		errs = append(errs, fmt.Errorf("models.model is required"))
	}
	if o.ResolveAPIKey() == "" {
		errs = append(errs, fmt.Errorf("models.api-key is required (set it or the referenced environment variable)"))
	}
	return errs
}

// ResolveAPIKey resolves a "${ENV_VAR}" reference in the configured key.
func (o *ModelOptions) ResolveAPIKey() string {
	if strings.HasPrefix(o.APIKey, "${") && strings.HasSuffix(o.APIKey, "}") {
		return os.Getenv(o.APIKey[2 : len(o.APIKey)-1])
	}
	return o.APIKey
}

func (o *ModelOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BaseURL, "models.base-url", o.BaseURL, "Base URL of the OpenAI-compatible completion service.")
	fs.StringVar(&o.APIKey, "models.api-key", o.APIKey, "API key for the completion service; ${ENV_VAR} references are resolved.")
	fs.StringVar(&o.Model, "models.model", o.Model, "Model identifier to request completions from.")
	fs.IntVar(&o.MaxTokens, "models.max-tokens", o.MaxTokens, "Maximum output tokens per turn.")
	fs.Float32Var(&o.Temperature, "models.temperature", o.Temperature, "Sampling temperature (0 leaves the provider default).")
}
