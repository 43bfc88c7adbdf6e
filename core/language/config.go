package language

// Config describes the language sets as loaded from environment or a config file.
type Config struct {
	Required []string `env:"L10N_REQUIRED_LANGUAGES" envSeparator:"," envDefault:"en" toml:"required" yaml:"required"`
	Optional []string `env:"L10N_OPTIONAL_LANGUAGES" envSeparator:","                 toml:"optional" yaml:"optional"`
}
