package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode       string        `mapstructure:"mode"`
	Port       int           `mapstructure:"port"`
	Secret     string        `mapstructure:"secret"`
	LogLevel   string        `mapstructure:"log_level"`
	ReadLimit  int64         `mapstructure:"read_limit"`
	SendBuffer int           `mapstructure:"send_buffer"`
	PingPeriod time.Duration `mapstructure:"ping_period"`

	JoinNotice   string `mapstructure:"join_notice"`
	Quorum       int    `mapstructure:"quorum"`
	QuorumSource string `mapstructure:"quorum_source"`

	FactCheck FactCheckConfig `mapstructure:"fact_check"`
	Oracle    OracleConfig    `mapstructure:"oracle"`

	CensoredWords []string `mapstructure:"censored_words"`
	CensorChar    string   `mapstructure:"censor_char"`
}

type FactCheckConfig struct {
	Limit    int           `mapstructure:"limit"`
	Interval time.Duration `mapstructure:"interval"`
}

type OracleConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads .env, then config/config.<CONFIG_ENV>.yaml, then DEBATE_*
// environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("module", "config").Msg("failed to read .env")
	}

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return load(fmt.Sprintf("config/config.%s.yaml", env))
}

func load(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("secret", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("send_buffer", 64)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("join_notice", "snapshot")
	v.SetDefault("quorum", 3)
	v.SetDefault("quorum_source", "server")
	v.SetDefault("fact_check.limit", 5)
	v.SetDefault("fact_check.interval", "1m")
	v.SetDefault("oracle.base_url", "https://api.cohere.ai")
	v.SetDefault("oracle.api_key", "")
	v.SetDefault("oracle.model", "command")
	v.SetDefault("oracle.timeout", "15s")
	v.SetDefault("censored_words", []string{})
	v.SetDefault("censor_char", "*")

	v.SetEnvPrefix("DEBATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("oracle.api_key", "DEBATE_ORACLE_API_KEY", "COHERE_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log.Info().Str("module", "config").Str("mode", cfg.Mode).Int("port", cfg.Port).Str("join_notice", cfg.JoinNotice).Str("quorum_source", cfg.QuorumSource).Msg("config ready")
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.JoinNotice {
	case "snapshot", "announce":
	default:
		return fmt.Errorf("join_notice must be snapshot or announce, got %q", c.JoinNotice)
	}
	switch c.QuorumSource {
	case "server", "client":
	default:
		return fmt.Errorf("quorum_source must be server or client, got %q", c.QuorumSource)
	}
	if c.Quorum < 1 {
		return fmt.Errorf("quorum must be >= 1, got %d", c.Quorum)
	}
	if c.SendBuffer < 1 {
		return fmt.Errorf("send_buffer must be >= 1, got %d", c.SendBuffer)
	}
	if len([]rune(c.CensorChar)) != 1 {
		return fmt.Errorf("censor_char must be a single character, got %q", c.CensorChar)
	}
	return nil
}

// MaskRune is the single rune censored text is replaced with.
func (c *Config) MaskRune() rune {
	return []rune(c.CensorChar)[0]
}
