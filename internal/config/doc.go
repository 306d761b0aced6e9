// Package config loads, normalizes, and validates devset configuration data.
package config
