package bank

// Config carries the tunable bounds for bank name validation. It can be
// populated from the environment via pkg/config.
type Config struct {
	NameMinLen int `env:"BANK_NAME_MIN_LEN" envDefault:"4"`
	NameMaxLen int `env:"BANK_NAME_MAX_LEN" envDefault:"32"`
}

// DefaultConfig returns the bounds used when no configuration is supplied.
func DefaultConfig() Config {
	return Config{NameMinLen: 4, NameMaxLen: 32}
}
