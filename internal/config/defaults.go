package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"webhook_url":             "",
		"threshold_seconds":       0.0,
		"webhook_timeout_seconds": 5,
	}
}
