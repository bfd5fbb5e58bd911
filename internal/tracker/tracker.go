package tracker

// Tracker receives progress notifications from long-running operations. The
// operation never depends on a tracker succeeding: implementations must not
// return errors, and rendering problems must stay invisible to the caller.
type Tracker interface {
	// Add registers a step under a stable key before it runs.
	Add(key, label string)
	// Start marks a registered step as running.
	Start(key string)
	// Complete marks a step done, with an optional short detail.
	Complete(key, detail string)
	// Skip marks a step as intentionally not run.
	Skip(key, detail string)
	// Error marks a step as failed.
	Error(key, detail string)
}

// Nop is the default Tracker: it discards every notification.
type Nop struct{}

func (Nop) Add(key, label string)       {}
func (Nop) Start(key string)            {}
func (Nop) Complete(key, detail string) {}
func (Nop) Skip(key, detail string)     {}
func (Nop) Error(key, detail string)    {}
