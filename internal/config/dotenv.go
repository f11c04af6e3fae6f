package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env.local and .env, in that order of precedence.
// godotenv never overwrites variables that are already set, so real OS
// environment always beats both files. Returns the files that existed.
func LoadDotEnv() []string {
	var found []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		found = append(found, name)
	}
	if len(found) == 0 {
		return nil
	}
	_ = godotenv.Load(found...)
	return found
}
