package config

const (
	defaultConfigPath        = "~/.config/wordoverlap/config.toml"
	defaultHistoryFallback   = "~/.local/share/wordoverlap/history.db"
	defaultPolicy            = "normalized"
	defaultOutputFormat      = "plain"
	defaultOutputColor       = "auto"
	defaultHistoryEnabled    = true
	defaultHistoryMaxRows    = 1000
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	envLogLevel              = "WORDOVERLAP_LOG_LEVEL"
	envTokenizerPolicy       = "WORDOVERLAP_POLICY"
	maxHistoryEntriesCeiling = 1_000_000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tokenizer: Tokenizer{
			Policy: defaultPolicy,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		History: History{
			Enabled:    defaultHistoryEnabled,
			Path:       defaultHistoryPath(),
			MaxEntries: defaultHistoryMaxRows,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
