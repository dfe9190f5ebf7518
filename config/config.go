// config/config.go
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
	Alert         AlertConfiguration
	Policy        PolicyConfiguration
	AuthZEN       AuthZENConfiguration
	Token         TokenConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr string
}

// ElasticsearchConfiguration stores data for the audit log backend
type ElasticsearchConfiguration struct {
	URL string
}

// AlertConfiguration stores the shared-signal receiver endpoints
type AlertConfiguration struct {
	SIEMURL    string
	RISCURL    string
	Timeout    time.Duration
	MaxRetries int
}

// PolicyConfiguration stores evaluation settings for the decision core
type PolicyConfiguration struct {
	StalenessWindow time.Duration
}

// AuthZENConfiguration stores the optional remote policy engine settings
type AuthZENConfiguration struct {
	Enabled  bool
	Endpoint string
	Timeout  time.Duration
}

// TokenConfiguration stores access token issuance settings
type TokenConfiguration struct {
	Issuer    string // "opaque" or "jwt"
	JWTSecret string
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
	viper.SetDefault("elasticsearch.url", "")
	viper.SetDefault("alert.siemURL", "http://localhost:8003/siem")
	viper.SetDefault("alert.riscURL", "http://localhost:8002/risc")
	viper.SetDefault("alert.timeout", "5s")
	viper.SetDefault("alert.maxRetries", 2)
	viper.SetDefault("policy.stalenessWindow", "1h")
	viper.SetDefault("authzen.enabled", false)
	viper.SetDefault("authzen.endpoint", "")
	viper.SetDefault("authzen.timeout", "5s")
	viper.SetDefault("token.issuer", "opaque")
	viper.SetDefault("token.jwtSecret", "")
	viper.SetDefault("log.dir", "logging")

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
