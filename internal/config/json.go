package config

import (
	"encoding/json"
	"flag"
	"os"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogLevel     string `json:"log_level"`
	LogFormat    string `json:"log_format"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Missing flag means no JSON layer. Empty JSON fields
// leave the current value alone. Read or unmarshal errors panic; the
// process has no useful way to continue with half a config.
func parseJSON(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}

// jsonConfigPath extracts the config file path from the -c or -config
// flags, ignoring every other argument.
func jsonConfigPath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
