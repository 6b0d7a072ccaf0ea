package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Supported session stores.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	LLM     LLMConfig
	Quiz    QuizConfig
	Upload  UploadConfig
	Session SessionConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type LLMConfig struct {
	Provider        string
	Model           string
	APIKey          string
	ServerURL       string
	Temperature     float64
	MaxOutputTokens int
	// RequestTimeout bounds one model call. Zero leaves the call unbounded.
	RequestTimeout time.Duration
}

type QuizConfig struct {
	MinQuestions     int
	MaxQuestions     int
	StrictValidation bool
}

type UploadConfig struct {
	MaxSizeMB int
	TempDir   string
}

type SessionConfig struct {
	Store string
	TTL   time.Duration
	// SweepInterval is how often expired in-memory sessions are purged. Zero disables the sweeper.
	SweepInterval time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 120)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.body_limit_mb", 12)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_output_tokens", 2000)
	v.SetDefault("llm.request_timeout", 0)

	v.SetDefault("quiz.min_questions", 1)
	v.SetDefault("quiz.max_questions", 50)
	v.SetDefault("quiz.strict_validation", true)

	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.temp_dir", os.TempDir())

	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("session.sweep_interval", "10m")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
}

// LoadConfig reads config.yaml from the usual locations, a .env file if present,
// and environment variables. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	paths := []string{".", "./config"}
	if os.Getenv("ENV") == "test" {
		paths = []string{"../../config", "../../"}
	}
	return load(paths...)
}

// LoadConfigFrom reads configuration with config.yaml searched only in dir.
func LoadConfigFrom(dir string) (*Config, error) {
	return load(dir)
}

func load(paths ...string) (*Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(v.GetString("llm.provider")),
			Model:           v.GetString("llm.model"),
			APIKey:          v.GetString("llm.api_key"),
			ServerURL:       v.GetString("llm.server"),
			Temperature:     v.GetFloat64("llm.temperature"),
			MaxOutputTokens: v.GetInt("llm.max_output_tokens"),
			RequestTimeout:  time.Duration(v.GetInt("llm.request_timeout")) * time.Second,
		},
		Quiz: QuizConfig{
			MinQuestions:     v.GetInt("quiz.min_questions"),
			MaxQuestions:     v.GetInt("quiz.max_questions"),
			StrictValidation: v.GetBool("quiz.strict_validation"),
		},
		Upload: UploadConfig{
			MaxSizeMB: v.GetInt("upload.max_size_mb"),
			TempDir:   v.GetString("upload.temp_dir"),
		},
		Session: SessionConfig{
			Store:         strings.ToLower(v.GetString("session.store")),
			TTL:           v.GetDuration("session.ttl"),
			SweepInterval: v.GetDuration("session.sweep_interval"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}

	// Override with conventional environment variables if set
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = strings.ToLower(provider)
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		cfg.LLM.ServerURL = llmServer
	}
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case ProviderGemini:
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		case ProviderOpenAI:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	return cfg, nil
}

// Validate reports configuration that cannot work at runtime.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("%s API key not found: set llm.api_key or the provider's API key variable", c.LLM.Provider)
		}
	case ProviderOllama:
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("ollama requires llm.server")
		}
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("redis session store requires redis.address")
		}
	default:
		return fmt.Errorf("unsupported session store: %q", c.Session.Store)
	}

	// Multipart framing adds to the file size, so the body limit must leave room
	// for it or oversized uploads never reach the file checks.
	if c.Upload.MaxSizeMB > 0 && c.Server.BodyLimitMB <= c.Upload.MaxSizeMB {
		return fmt.Errorf("server.body_limit_mb (%d) must exceed upload.max_size_mb (%d)", c.Server.BodyLimitMB, c.Upload.MaxSizeMB)
	}
	if c.Quiz.MinQuestions < 1 || c.Quiz.MaxQuestions < c.Quiz.MinQuestions {
		return fmt.Errorf("invalid question limits: min=%d max=%d", c.Quiz.MinQuestions, c.Quiz.MaxQuestions)
	}
	return nil
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) * 1024 * 1024
}
