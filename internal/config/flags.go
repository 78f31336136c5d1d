package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagOutput      = flag.String("o", "", "Output directory (default: <input stem>_extracted)")
	flagList        = flag.Bool("list", false, "List contents only, write nothing")
	flagShadersOnly = flag.Bool("shaders-only", false, "Extract only shader sources")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
	flagSaveConfig  = flag.String("save-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// Input returns the project file path given as the first positional argument.
func Input() string {
	return flag.Arg(0)
}

// ListOnly reports whether -list was given.
func ListOnly() bool {
	return *flagList
}

// SaveConfigPath returns the -save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutput != "" {
		cfg.Output.Dir = *flagOutput
	}
	if *flagShadersOnly {
		cfg.Output.ShadersOnly = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
