package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

const (
	defaultListenAddr = ":8090"
	defaultDBPath     = "/var/lib/llama-time/dashboards.db"
	defaultSite       = "datadoghq.com"
	defaultLLMBaseURL = "https://api.llama.com"
	defaultLLMModel   = "Llama-4-Maverick-17B-128E-Instruct-FP8"
)

// Environment variables that override (or stand in for) file values.
// Credentials are expected to come from the environment in most
// deployments.
const (
	EnvDatadogAPIKey = "DATADOG_API_KEY"
	EnvDatadogAppKey = "DATADOG_APP_KEY"
	EnvDatadogSite   = "DATADOG_SITE"
	EnvLlamaAPIKey   = "LLAMA_API_KEY"
)

// DatadogConfig holds the vendor credential pair and site.
type DatadogConfig struct {
	APIKey string `json:"api_key,omitempty"`
	AppKey string `json:"app_key,omitempty"`
	Site   string `json:"site,omitempty"` // e.g., "datadoghq.com"
}

// LLMConfig holds the chat-completions endpoint settings.
type LLMConfig struct {
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

// ServerConfig is the full configuration for the investigation server.
type ServerConfig struct {
	ListenAddr string        `json:"listen_addr"`
	DBPath     string        `json:"db_path"`
	LogLevel   string        `json:"log_level,omitempty"`
	Datadog    DatadogConfig `json:"datadog"`
	LLM        LLMConfig     `json:"llm"`
}

// ApplyDefaults fills unset fields, pulling credentials from the
// environment when the file omits them.
func (c *ServerConfig) ApplyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}

	if c.Datadog.APIKey == "" {
		c.Datadog.APIKey = envValue(EnvDatadogAPIKey)
	}

	if c.Datadog.AppKey == "" {
		c.Datadog.AppKey = envValue(EnvDatadogAppKey)
	}

	if c.Datadog.Site == "" {
		c.Datadog.Site = envValue(EnvDatadogSite)
	}

	if c.Datadog.Site == "" {
		c.Datadog.Site = defaultSite
	}

	if c.LLM.APIKey == "" {
		c.LLM.APIKey = envValue(EnvLlamaAPIKey)
	}

	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}

	if c.LLM.Model == "" {
		c.LLM.Model = defaultLLMModel
	}
}

// Validate reports missing credentials eagerly, naming the variable
// that would supply them. Runs before any network call is attempted.
func (c *ServerConfig) Validate() error {
	if c.Datadog.APIKey == "" {
		return fmt.Errorf("%w: %s", errMissingCredential, EnvDatadogAPIKey)
	}

	if c.Datadog.AppKey == "" {
		return fmt.Errorf("%w: %s", errMissingCredential, EnvDatadogAppKey)
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w: %s", errMissingCredential, EnvLlamaAPIKey)
	}

	return nil
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
