package commands

import (
	"errors"
	"userapi/lib/configutil"
	"userapi/lib/telemetry"
	"userapi/lib/userapi"

	"dario.cat/mergo"
)

const configName = "userapi.json5"

type Config struct {
	BaseUrl           string `json:"base_url"`
	OutputDir         string `json:"output_dir"`
	AttachRequestBody bool   `json:"attach_request_body"`
	Verbose           bool   `json:"verbose"`
	// DumpDir receives full request/response dumps when verbose, it may
	// start with <dev_state>. Empty disables dumps.
	DumpDir   string           `json:"dump_dir"`
	Telemetry telemetry.Config `json:"telemetry"`
}

var defaultConfig = Config{
	BaseUrl:   userapi.DefaultBaseUrl,
	OutputDir: ".",
}

// loadConfig reads `path` when given, otherwise the nearest userapi.json5
// up from the cwd, falling back to the defaults when there is none.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return configutil.ReadOrDefault(configName, defaultConfig)
	}
	cfg, err := configutil.ReadConfig[Config](path)
	if err != nil {
		return cfg, err
	}
	err = mergo.Merge(&cfg, defaultConfig)
	return cfg, err
}

func validateConfig(cfg Config) error {
	if cfg.BaseUrl == "" {
		return errors.New("base_url must not be empty")
	}
	return nil
}
