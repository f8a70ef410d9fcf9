package config

const (
	AppName    = "langobridge-admin-api"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort    = ":8080"
	DefaultLogLevel      = "info"
	DefaultFetchPageSize = 1000
	DefaultPracticeLimit = 20
	DefaultTokenTTLHours = 24
)

const (
	DefaultOpenAIBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenAIModel   = "openai/gpt-4o-mini"
	DefaultOpenAIDelayMs = 500

	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-1.5-flash"
	DefaultGeminiDelayMs = 1000

	DefaultImageHostURL = "https://api.imgbb.com/1/upload"
)
