package loop

// Commands buffers work that must happen after every system has seen the
// frame, such as starting a sound or ending the loop.
type Commands struct {
	defers []func()
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the scheduler to end after this frame.
func (c *Commands) Stop() {
	c.stop = true
}

// Stopping reports whether Stop was called.
func (c *Commands) Stopping() bool {
	return c.stop
}

// Flush runs the deferred functions in the order they were queued and resets
// the buffer. The stop request survives the flush.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
