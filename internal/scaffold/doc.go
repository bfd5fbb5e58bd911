// Package scaffold orchestrates project initialization: bundle extraction,
// per-agent command rendering into a staging tree, tree materialization at
// the destination, and script permission normalization.
package scaffold
