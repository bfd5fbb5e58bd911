// Package tracker reports scaffolding progress. Operations accept a Tracker
// and treat it as fire-and-forget: the Nop implementation is the default, and
// the terminal StepTracker swallows its own write errors so a broken pipe can
// never fail a scaffold.
package tracker
