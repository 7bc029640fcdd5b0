package config

const (
	defaultLogFormat    = "text"
	defaultLogLevel     = "info"
	defaultOutputFormat = "table"
	defaultOutputColor  = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Registry: Registry{},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
	}
}
