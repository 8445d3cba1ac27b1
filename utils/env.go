package utils

import "medexam/config"

// GetEnv returns the application environment
func GetEnv() string {
	return config.AppConfig.Env
}

// IsProduction checks if the environment is production
func IsProduction() bool {
	return GetEnv() == "production"
}
