// Package ui implements the interactive prompts: numbered selection menus,
// yes/no confirmation, and terminal detection. All prompts read and write
// through injected streams so tests can drive them.
package ui
