package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads the optional .env file from the working
// directory. A missing file is not an error: every setting has a default.
func InitEnvironmentVariables() {
	if _, err := os.Stat(ENV_FILENAME); err != nil {
		return
	}

	if err := godotenv.Load(ENV_FILENAME); err != nil {
		log.Warnf("failed to load %s file: %v", ENV_FILENAME, err)
	}
}
