// Package config manages user-level settings stored at ~/.speclite/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default AI assistants and script variant used by `speclite init`.
package config
