package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/ordkort.git/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
	App        AppConfig        `mapstructure:"app" validate:"required"`
	BotToken   string           `mapstructure:"bot_token"`
	DB         DBConfig         `mapstructure:"db" validate:"required"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Examples   ExamplesConfig   `mapstructure:"examples"`
	Progress   ProgressConfig   `mapstructure:"progress"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	URL        string `mapstructure:"url"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Conn       DBConn `mapstructure:"conn"`
	Cfg        DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type GeneratorConfig struct {
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model" validate:"required"`
	Temperature float64       `mapstructure:"temperature" validate:"min=0,max=2"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type TranslatorConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Email   string        `mapstructure:"email" validate:"omitempty,email"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type ExamplesConfig struct {
	MaxAttempts  int    `mapstructure:"max_attempts" validate:"min=1,max=10"`
	MaxKeep      int    `mapstructure:"max_keep" validate:"min=0,max=100"`
	ClozeMaxKeep int    `mapstructure:"cloze_max_keep" validate:"min=1,max=100"`
	DedupMode    string `mapstructure:"dedup_mode" validate:"oneof=either both"`
}

type ProgressConfig struct {
	DefaultWindow int `mapstructure:"default_window" validate:"min=1,max=90"`
	MaxWindow     int `mapstructure:"max_window" validate:"min=1,max=90"`
}

type HTTPConfig struct {
	Addr      string        `mapstructure:"addr" validate:"required"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"min=0"`
}

type CacheConfig struct {
	SizeMB int           `mapstructure:"size_mb" validate:"min=0,max=1024"`
	TTL    time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var envBindings = [][2]string{
	{"bot_token", "BOT_TOKEN"},
	{"db.driver", "DB_DRIVER"},
	{"db.url", "DATABASE_URL"},
	{"db.sqlite_path", "SQLITE_PATH"},
	{"db.conn.host", "DB_HOST"},
	{"db.conn.port", "DB_PORT"},
	{"db.conn.user", "DB_USER"},
	{"db.conn.password", "DB_PASSWORD"},
	{"db.conn.name", "DB_NAME"},
	{"db.conn.ssl", "DB_SSL"},
	{"generator.api_key", "OPENAI_API_KEY"},
	{"generator.base_url", "OPENAI_BASE_URL"},
	{"generator.model", "OPENAI_MODEL"},
	{"http.addr", "HTTP_ADDR"},
	{"http.jwt_secret", "JWT_SECRET"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 30*time.Second)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.sqlite_path", "database.db")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("generator.base_url", "https://api.openai.com")
	v.SetDefault("generator.model", "gpt-4o")
	v.SetDefault("generator.temperature", 0.4)
	v.SetDefault("generator.timeout", 60*time.Second)
	v.SetDefault("translator.base_url", "https://api.mymemory.translated.net")
	v.SetDefault("translator.timeout", 10*time.Second)
	v.SetDefault("examples.max_attempts", 3)
	v.SetDefault("examples.max_keep", 0)
	v.SetDefault("examples.cloze_max_keep", 5)
	v.SetDefault("examples.dedup_mode", "either")
	v.SetDefault("progress.default_window", 7)
	v.SetDefault("progress.max_window", 90)
	v.SetDefault("http.addr", ":5000")
	v.SetDefault("http.token_ttl", 7*24*time.Hour)
	v.SetDefault("cache.size_mb", 16)
	v.SetDefault("cache.ttl", 30*time.Minute)
	v.SetDefault("metrics.enabled", true)
}

func Init() (*Config, error) {
	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}

	return Load(configPath, configName)
}

// Load reads <path>/<name>.yaml, applies environment overrides and validates
// the result.
func Load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName(name)

	for _, b := range envBindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Progress.DefaultWindow > cfg.Progress.MaxWindow {
		return nil, fmt.Errorf("progress.default_window (%d) exceeds progress.max_window (%d)",
			cfg.Progress.DefaultWindow, cfg.Progress.MaxWindow)
	}

	return &cfg, nil
}
