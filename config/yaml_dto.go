package config

// YAML mirror of Config. Pointers distinguish "absent" from zero values so a
// partial file only overrides what it names.

type YAMLConfig struct {
	Predictor *YAMLPredictor `yaml:"predictor"`
	Cache     *YAMLCache     `yaml:"cache"`
	Server    *YAMLServer    `yaml:"server"`
	Log       *YAMLLog       `yaml:"log"`
	Defaults  *YAMLDefaults  `yaml:"defaults"`
}

type YAMLPredictor struct {
	URL     *string `yaml:"url"`
	Timeout *string `yaml:"timeout"`
	Retries *int    `yaml:"retries"`
	Backoff *string `yaml:"backoff"`
}

type YAMLCache struct {
	Enabled *bool   `yaml:"enabled"`
	Dir     *string `yaml:"dir"`
	TTL     *string `yaml:"ttl"`
}

type YAMLServer struct {
	Addr *string `yaml:"addr"`
	Mode *string `yaml:"mode"`
}

type YAMLLog struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
	Path   *string `yaml:"path"`
}

type YAMLDefaults struct {
	Strategy *string `yaml:"strategy"`
}
