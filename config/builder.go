package config

// ConfigBuilder builds a Config starting from the built-in defaults,
// ignoring the environment.
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder creates a builder seeded with the built-in defaults
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: Config{
		HTTP:     HTTPConfig{Port: "5001"},
		Template: TemplateConfig{Dir: "templates"},
		Debug:    true,
	}}
}

func (b *ConfigBuilder) WithHost(host string) *ConfigBuilder {
	b.cfg.HTTP.Host = host
	return b
}

func (b *ConfigBuilder) WithPort(port string) *ConfigBuilder {
	b.cfg.HTTP.Port = port
	return b
}

func (b *ConfigBuilder) WithTemplateDir(dir string) *ConfigBuilder {
	b.cfg.Template.Dir = dir
	return b
}

func (b *ConfigBuilder) WithDebug(debug bool) *ConfigBuilder {
	b.cfg.Debug = debug
	return b
}

func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// Build validates and returns the configuration
func (b *ConfigBuilder) Build() (*Config, error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
