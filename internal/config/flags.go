package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagMover   = flag.String("mover", "", "Name of the shape that follows the path")
	flagLinear  = flag.Bool("linear", false, "Start with linear interpolation")
	flagTension = flag.Float64("tension", -1, "Catmull-Rom tension in [0,1]")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMover != "" {
		cfg.Scene.Mover = *flagMover
	}
	if *flagLinear {
		cfg.Animation.Linear = true
	}
	if *flagTension >= 0 {
		cfg.Animation.Tension = min(float32(*flagTension), 1)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
