package config

import "github.com/joho/godotenv"

// loadDotenv reads a .env file into the process environment if one
// exists. Already-set environment variables win.
func loadDotenv() error {
	return godotenv.Load()
}
