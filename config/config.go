// api/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Auth          AuthConfiguration
	Voice         VoiceConfiguration
	Summarizer    SummarizerConfiguration
	Content       ContentConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// RedisConfiguration stores data for the Redis content store connection
type RedisConfiguration struct {
	Addr string
}

// ElasticsearchConfiguration stores data for the audit-trail connection
type ElasticsearchConfiguration struct {
	URL string
}

// AuthConfiguration stores the upstream token-validation settings
type AuthConfiguration struct {
	BaseURL string
}

// VoiceConfiguration stores the voice-session provisioning settings
type VoiceConfiguration struct {
	BaseURL string
	APIKey  string
	AgentID string
	WsURL   string
}

// SummarizerConfiguration stores the AI summarizer settings
type SummarizerConfiguration struct {
	URL    string
	APIKey string
}

// ContentConfiguration stores content-store lookup settings
type ContentConfiguration struct {
	SceneKey string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("log.dir", "logging")

	// Upstream token validation
	viper.SetDefault("auth.baseUrl", "https://auth.vigil.adaptivsec.io")
	viper.SetDefault("auth.retry.maxAttempts", 3)
	viper.SetDefault("auth.retry.backoff", "fixed")
	viper.SetDefault("auth.retry.interval", "500ms")
	viper.SetDefault("auth.retry.perAttemptTimeout", "5s")
	viper.SetDefault("auth.cache.positiveTTL", "5m")
	viper.SetDefault("auth.cache.negativeTTL", "30s")

	// Voice-session provisioning. Signed-URL minting is skipped entirely
	// when the API key is empty.
	viper.SetDefault("voice.baseUrl", "https://api.elevenlabs.io")
	viper.SetDefault("voice.apiKey", "")
	viper.SetDefault("voice.agentId", "")
	viper.SetDefault("voice.wsUrl", "wss://api.elevenlabs.io/v1/convai/conversation")

	// AI summarizer
	viper.SetDefault("summarizer.url", "https://ai.vigil.adaptivsec.io/v1/summaries")
	viper.SetDefault("summarizer.apiKey", "")
	viper.SetDefault("summarizer.timeout", "30s")

	// Content store
	viper.SetDefault("content.sceneKey", "4")

	// Rate limiting
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
