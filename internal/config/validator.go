package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wesleyorama2/randomuser"
)

// MaxCount is the largest batch the upstream serves in one request.
const MaxCount = 5000

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var validFormats = []string{"text", "json", "yaml"}

// genderKeywords are accepted in defaults.gender alongside identities.
var genderKeywords = []string{"unspecified", "none", "trans"}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) []ValidationError {
	var errors []ValidationError

	if config.BaseURL != "" {
		u, err := url.Parse(config.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, ValidationError{
				Path:    "baseUrl",
				Message: fmt.Sprintf("invalid URL: %s", config.BaseURL),
			})
		}
	}

	if d, err := ParseDurationString(config.Timeout); err != nil {
		errors = append(errors, ValidationError{
			Path:    "timeout",
			Message: fmt.Sprintf("invalid duration '%s': %v", config.Timeout, err),
		})
	} else if d < 0 {
		errors = append(errors, ValidationError{
			Path:    "timeout",
			Message: "timeout cannot be negative",
		})
	}

	for key := range config.Headers {
		if key == "" {
			errors = append(errors, ValidationError{
				Path:    "headers",
				Message: "header name cannot be empty",
			})
		}
	}

	errors = append(errors, ValidateDefaults(&config.Defaults)...)

	if config.Output.Format != "" && !stringInSlice(config.Output.Format, validFormats) {
		errors = append(errors, ValidationError{
			Path:    "output.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: text, json, yaml", config.Output.Format),
		})
	}

	return errors
}

// ValidateDefaults validates default filters
func ValidateDefaults(defaults *Defaults) []ValidationError {
	var errors []ValidationError

	if defaults.Count < 0 || defaults.Count > MaxCount {
		errors = append(errors, ValidationError{
			Path:    "defaults.count",
			Message: fmt.Sprintf("count must be between 0 and %d", MaxCount),
		})
	}

	for i, code := range defaults.Nationalities {
		if _, err := randomuser.ParseNationality(code); err != nil {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("defaults.nationalities[%d]", i),
				Message: err.Error(),
			})
		}
	}

	for i, name := range defaults.Gender {
		if stringInSlice(strings.ToLower(strings.TrimSpace(name)), genderKeywords) {
			continue
		}
		if _, err := randomuser.ParseGenderIdentity(name); err != nil {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("defaults.gender[%d]", i),
				Message: err.Error(),
			})
		}
	}

	return errors
}

// stringInSlice checks if a string is in a slice
func stringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
