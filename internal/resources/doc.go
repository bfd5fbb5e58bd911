// Package resources carries the embedded scaffolding bundle: workflow command
// templates, document templates, platform script variants, and seed memory
// files. The bundle is extracted to a temporary directory at scaffold time so
// the rendering pipeline can operate on ordinary files.
package resources
