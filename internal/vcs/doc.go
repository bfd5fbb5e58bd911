// Package vcs wraps the git operations the scaffolder needs: repository
// detection and first-commit initialization. Git failures degrade to
// warnings, never to scaffold failures.
package vcs
