package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	EmailJS   EmailJSConfig
	SheetDB   SheetDBConfig
	Admin     AdminConfig
	CacheTTLs CacheTTLConfig
}

type ServerConfig struct {
	Port         int           `validate:"required,min=1,max=65535"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
	IdleTimeout  time.Duration `validate:"gt=0"`
	BodyLimit    int           `validate:"gt=0"`
	AllowOrigins string        `validate:"required"`
}

type LoggerConfig struct {
	Env   string `validate:"omitempty,oneof=production development test"`
	Level string `validate:"omitempty,oneof=debug info warn error"`
}

type RedisConfig struct {
	Address  string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"min=0"`
}

// EmailJSConfig holds the transactional email collaborator settings. The ids
// may be empty at boot; sending then fails with a configuration error.
type EmailJSConfig struct {
	Endpoint    string `validate:"required,url"`
	ServiceID   string
	TemplateID  string
	UserID      string
	AccessToken string
	Timeout     time.Duration `validate:"gt=0"`
}

// SheetDBConfig holds the spreadsheet-backed row store endpoints.
type SheetDBConfig struct {
	RegistrationsEndpoint string        `validate:"omitempty,url"`
	QuestionsEndpoint     string        `validate:"omitempty,url"`
	ScheduleEndpoint      string        `validate:"omitempty,url"`
	Timeout               time.Duration `validate:"gt=0"`
}

type AdminConfig struct {
	JWTSecret string
}

// CacheTTLConfig keeps TTLs as duration strings ("10m", "24h").
type CacheTTLConfig struct {
	Questions string
	Schedule  string
	Attempt   string
}

const (
	DefaultQuestionsTTL = 10 * time.Minute
	DefaultScheduleTTL  = 10 * time.Minute
	DefaultAttemptTTL   = 24 * time.Hour
)

// LoadConfig reads config.yaml from the working directory (or ./config) and
// applies environment overrides.
func LoadConfig() (*Config, error) {
	paths := []string{".", "./config"}
	if os.Getenv("ENV") == "test" {
		// For test environment, look for config in the project root
		paths = append(paths, "../../config", "../../")
	}
	return Load(paths...)
}

// Load reads config.yaml from the first of paths that has one. A missing file
// is not an error: defaults and environment variables still apply.
func Load(paths ...string) (*Config, error) {
	// .env is optional; real environment variables take precedence over it
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		EmailJS: EmailJSConfig{
			Endpoint:    v.GetString("emailjs.endpoint"),
			ServiceID:   v.GetString("emailjs.service_id"),
			TemplateID:  v.GetString("emailjs.template_id"),
			UserID:      v.GetString("emailjs.user_id"),
			AccessToken: v.GetString("emailjs.access_token"),
			Timeout:     v.GetDuration("emailjs.timeout"),
		},
		SheetDB: SheetDBConfig{
			RegistrationsEndpoint: v.GetString("sheetdb.registrations_endpoint"),
			QuestionsEndpoint:     v.GetString("sheetdb.questions_endpoint"),
			ScheduleEndpoint:      v.GetString("sheetdb.schedule_endpoint"),
			Timeout:               v.GetDuration("sheetdb.timeout"),
		},
		Admin: AdminConfig{
			JWTSecret: v.GetString("admin.jwt_secret"),
		},
		CacheTTLs: CacheTTLConfig{
			Questions: v.GetString("cache_ttls.questions"),
			Schedule:  v.GetString("cache_ttls.schedule"),
			Attempt:   v.GetString("cache_ttls.attempt"),
		},
	}

	// Variable names the site's deployment already uses
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if endpoint := os.Getenv("SHEETDB_ENDPOINT"); endpoint != "" {
		config.SheetDB.RegistrationsEndpoint = endpoint
	}
	if userID := os.Getenv("EMAILJS_PUBLIC_KEY"); userID != "" && config.EmailJS.UserID == "" {
		config.EmailJS.UserID = userID
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("emailjs.endpoint", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("emailjs.timeout", "10s")
	v.SetDefault("sheetdb.timeout", "10s")
	v.SetDefault("cache_ttls.questions", DefaultQuestionsTTL.String())
	v.SetDefault("cache_ttls.schedule", DefaultScheduleTTL.String())
	v.SetDefault("cache_ttls.attempt", DefaultAttemptTTL.String())
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when
// it is empty, malformed or not positive.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
