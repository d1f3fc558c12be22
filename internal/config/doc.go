// Package config resolves runtime settings from command-line flags and
// DWG_* environment variables. Flags win over the environment; no
// configuration file is read.
package config
