// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// A .env file next to the working directory is loaded first when present, so
// secrets such as ONE_INCH_API_KEY can live outside the YAML.
package config
