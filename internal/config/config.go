package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	LLM       LLMConfig       `yaml:"llm"`
	Grounding GroundingConfig `yaml:"grounding"`
	Usage     UsageConfig     `yaml:"usage"`
	Skill     SkillConfig     `yaml:"skill"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"trendcurator"`
}

// RedisConfig holds the connection for the redis session store.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// SessionConfig selects the per-session scratch store.
type SessionConfig struct {
	Driver string        `yaml:"driver" env:"SESSION_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl"    env:"SESSION_TTL"    env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LLMConfig holds generation provider settings.
type LLMConfig struct {
	Provider        string `yaml:"provider"         env:"LLM_PROVIDER"         env-default:"anthropic"`
	APIKey          string `yaml:"api_key"          env:"LLM_API_KEY"`
	BaseURL         string `yaml:"base_url"         env:"LLM_BASE_URL"`
	Model           string `yaml:"model"            env:"LLM_MODEL"            env-default:"claude-sonnet-4-5"`
	NormalizerModel string `yaml:"normalizer_model" env:"LLM_NORMALIZER_MODEL"`
	MaxTokens       int64  `yaml:"max_tokens"       env:"LLM_MAX_TOKENS"       env-default:"1024"`

	BreakerFailures    uint32        `yaml:"breaker_failures"     env:"LLM_BREAKER_FAILURES"     env-default:"5"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout" env:"LLM_BREAKER_OPEN_TIMEOUT" env-default:"30s"`
	BreakerHalfOpen    uint32        `yaml:"breaker_half_open"    env:"LLM_BREAKER_HALF_OPEN"    env-default:"1"`
}

// NormalizerModelOrDefault returns the model used for topic normalization.
func (c LLMConfig) NormalizerModelOrDefault() string {
	if c.NormalizerModel != "" {
		return c.NormalizerModel
	}
	return c.Model
}

// GroundingConfig holds answer grounding and normalization settings.
type GroundingConfig struct {
	HistoryTurns        int  `yaml:"history_turns"        env:"GROUNDING_HISTORY_TURNS"        env-default:"5"`
	ArticleLimit        int  `yaml:"article_limit"        env:"GROUNDING_ARTICLE_LIMIT"        env-default:"5"`
	ArticleBodyLimit    int  `yaml:"article_body_limit"   env:"GROUNDING_ARTICLE_BODY_LIMIT"   env-default:"2000"`
	AnswerLength        int  `yaml:"answer_length"        env:"GROUNDING_ANSWER_LENGTH"        env-default:"200"`
	StrictNormalization bool `yaml:"strict_normalization" env:"GROUNDING_STRICT_NORMALIZATION" env-default:"true"`
	NormalizeCacheSize  int  `yaml:"normalize_cache_size" env:"GROUNDING_NORMALIZE_CACHE_SIZE" env-default:"1024"`
}

// UsageConfig holds the monthly quota.
type UsageConfig struct {
	MonthlyLimit int `yaml:"monthly_limit" env:"USAGE_MONTHLY_LIMIT" env-default:"100"`
}

// SkillConfig holds voice platform settings.
type SkillConfig struct {
	// ApplicationID, when set, rejects envelopes addressed to other skills.
	ApplicationID string `yaml:"application_id" env:"SKILL_APPLICATION_ID"`
}
