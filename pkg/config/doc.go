// Package config loads configuration structs from environment variables
// using `env` struct tags, with optional .env file support for local
// development. It is a thin wrapper around caarlos0/env and godotenv that
// adds sentinel errors and a panicking MustLoad variant.
package config
