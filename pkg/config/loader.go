package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load parses environment variables into the provided configuration struct
// based on `env` field tags. Before the first parse in a process it
// attempts to load a .env file from the working directory; a missing file
// is not an error.
//
// Example:
//
//	type Config struct {
//	    NameMinLen int `env:"BANK_NAME_MIN_LEN" envDefault:"4"`
//	    NameMaxLen int `env:"BANK_NAME_MAX_LEN" envDefault:"32"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is like Load but panics on error. Intended for initialization
// paths where a broken environment should stop the process.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
