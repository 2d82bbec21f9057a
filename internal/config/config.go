package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Indexer    IndexerConfig    `yaml:"indexer"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// NormalizerConfig holds tokenization settings.
// Phrases maps a language code to its multi-word expressions; matching
// expressions are emitted as single PHRASE tokens during normalization.
type NormalizerConfig struct {
	Phrases map[string][]string `yaml:"phrases" env:"-"`
}

// IndexerConfig holds reindex orchestration settings.
type IndexerConfig struct {
	// ConflictRetries is the number of attempts for a reindex transaction
	// that loses a serialization or deadlock conflict.
	ConflictRetries int `yaml:"conflict_retries" env:"INDEXER_CONFLICT_RETRIES" env-default:"3"`
	// Parallelism bounds how many books are reindexed concurrently by the
	// reindex command. Reindexing of a single book is always serialized.
	Parallelism int `yaml:"parallelism" env:"INDEXER_PARALLELISM" env-default:"4"`
}
