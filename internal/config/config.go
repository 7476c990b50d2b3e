package config

import "time"

// Sink kinds.
const (
	SinkCSV      = "csv"
	SinkPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Lang     LangConfig     `yaml:"lang"`
	Files    FilesConfig    `yaml:"files"`
	Notes    NotesConfig    `yaml:"notes"`
	Remote   RemoteConfig   `yaml:"remote"`
	Sink     SinkConfig     `yaml:"sink"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// LangConfig holds the language pair. Source has no default.
type LangConfig struct {
	Source string `yaml:"source" env:"NOTES_SOURCE_LANG"`
	Target string `yaml:"target" env:"NOTES_TARGET_LANG" env-default:"en"`
}

// FilesConfig holds input and output paths.
type FilesConfig struct {
	Queries string `yaml:"queries" env:"NOTES_QUERY_FILE"  env-default:"queries.txt"`
	Output  string `yaml:"output"  env:"NOTES_OUTPUT_FILE" env-default:"reverso.csv"`
}

// NotesConfig holds note-building tunables.
type NotesConfig struct {
	MaxExamples    int `yaml:"max_examples"    env:"NOTES_MAX_EXAMPLES"    env-default:"3"`
	MaxFrequencies int `yaml:"max_frequencies" env:"NOTES_MAX_FREQUENCIES" env-default:"5"`
	// FrequencyThreshold drops translations whose frequency is not above
	// threshold * (top frequency). 0.1 keeps anything over 10% of the top.
	FrequencyThreshold float64 `yaml:"frequency_threshold" env:"NOTES_FREQUENCY_THRESHOLD" env-default:"0.1"`
	PreferShort        bool    `yaml:"prefer_short"        env:"NOTES_PREFER_SHORT"        env-default:"false"`
	// PreferShortWindow is how many examples are pulled before sorting by
	// length. Roughly one page of Reverso results.
	PreferShortWindow int  `yaml:"prefer_short_window" env:"NOTES_PREFER_SHORT_WINDOW" env-default:"15"`
	KeepPunctuation   bool `yaml:"keep_punctuation"    env:"NOTES_KEEP_PUNCTUATION"    env-default:"false"`
}

// RemoteConfig holds Reverso Context client settings.
type RemoteConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"REVERSO_BASE_URL"   env-default:"https://context.reverso.net"`
	UserAgent string        `yaml:"user_agent" env:"REVERSO_USER_AGENT" env-default:"Mozilla/5.0"`
	Timeout   time.Duration `yaml:"timeout"    env:"REVERSO_TIMEOUT"    env-default:"30s"`
	// MaxRetries is the total number of attempts per query.
	MaxRetries   int           `yaml:"max_retries"   env:"REVERSO_MAX_RETRIES"   env-default:"5"`
	RetryWait    time.Duration `yaml:"retry_wait"    env:"REVERSO_RETRY_WAIT"    env-default:"60s"`
	RequestDelay time.Duration `yaml:"request_delay" env:"REVERSO_REQUEST_DELAY" env-default:"1s"`
}

// SinkConfig selects where notes are written.
type SinkConfig struct {
	Kind string `yaml:"kind" env:"NOTES_SINK" env-default:"csv"`
}

// DatabaseConfig holds PostgreSQL connection settings for the postgres sink.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
