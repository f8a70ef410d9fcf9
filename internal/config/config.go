package config

import (
	"log"

	"github.com/spf13/viper"
)

type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
	// DelayMs is the fixed pause between records in a batch. A throttle for
	// the provider's rate limit, not a backoff.
	DelayMs int `mapstructure:"delay_ms"`
}

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Auth struct {
		Enabled       bool   `mapstructure:"enabled"`
		JWTSecret     string `mapstructure:"jwt_secret"`
		TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	} `mapstructure:"auth"`
	App struct {
		FetchPageSize int `mapstructure:"fetch_page_size"`
		PracticeLimit int `mapstructure:"practice_limit"`
	} `mapstructure:"app"`
	Providers struct {
		Default string         `mapstructure:"default"` // "openai" or "gemini"
		OpenAI  ProviderConfig `mapstructure:"openai"`
		Gemini  ProviderConfig `mapstructure:"gemini"`
	} `mapstructure:"providers"`
	Uploads struct {
		ImageHostURL string `mapstructure:"image_host_url"`
	} `mapstructure:"uploads"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("providers.openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("providers.gemini.api_key", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: config file not found, relying on env and defaults")
		} else {
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		return err
	}

	applyDefaults()
	return nil
}

func applyDefaults() {
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.FetchPageSize <= 0 {
		Cfg.App.FetchPageSize = DefaultFetchPageSize
	}
	if Cfg.App.PracticeLimit <= 0 {
		Cfg.App.PracticeLimit = DefaultPracticeLimit
	}
	if Cfg.Auth.TokenTTLHours <= 0 {
		Cfg.Auth.TokenTTLHours = DefaultTokenTTLHours
	}
	if !viper.IsSet("auth.enabled") {
		Cfg.Auth.Enabled = true
	}
	if Cfg.Providers.Default == "" {
		Cfg.Providers.Default = "openai"
	}
	if Cfg.Providers.OpenAI.BaseURL == "" {
		Cfg.Providers.OpenAI.BaseURL = DefaultOpenAIBaseURL
	}
	if Cfg.Providers.OpenAI.Model == "" {
		Cfg.Providers.OpenAI.Model = DefaultOpenAIModel
	}
	if Cfg.Providers.OpenAI.DelayMs <= 0 {
		Cfg.Providers.OpenAI.DelayMs = DefaultOpenAIDelayMs
	}
	if Cfg.Providers.Gemini.BaseURL == "" {
		Cfg.Providers.Gemini.BaseURL = DefaultGeminiBaseURL
	}
	if Cfg.Providers.Gemini.Model == "" {
		Cfg.Providers.Gemini.Model = DefaultGeminiModel
	}
	if Cfg.Providers.Gemini.DelayMs <= 0 {
		Cfg.Providers.Gemini.DelayMs = DefaultGeminiDelayMs
	}
	if Cfg.Uploads.ImageHostURL == "" {
		Cfg.Uploads.ImageHostURL = DefaultImageHostURL
	}
}
