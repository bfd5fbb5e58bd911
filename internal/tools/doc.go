// Package tools checks for the presence and versions of external agent CLIs
// that scaffolded projects depend on.
package tools
