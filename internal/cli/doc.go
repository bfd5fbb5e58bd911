// Package cli defines the command tree: init, check, config, and version.
package cli
