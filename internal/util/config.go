package util

// Config holds runtime settings and flags.
type Config struct {
	EnvFile string `mapstructure:"env_file"` // path of the .env.local to display
	Addr    string `mapstructure:"addr"`     // listen address for serve
	Theme   string `mapstructure:"theme"`    // catppuccin|dracula|gembooth|gruvbox|solarized_dark
	Verbose bool   `mapstructure:"verbose"`
	CORS    bool   `mapstructure:"cors"`
	LogFile string `mapstructure:"log_file"` // TUI log destination; empty discards
	Plain   bool   `mapstructure:"plain"`    // render without colours
}
