package sim

// Commands buffers work that must wait until every system of the current
// tick has run.
type Commands struct {
	replaces []any
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at the end of the tick.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Replace queues an overwrite of the singleton with value's type.
func (c *Commands) Replace(value any) {
	c.replaces = append(c.replaces, value)
}

// Flush applies replacements, then deferred functions, and resets the buffer.
func (c *Commands) Flush(world *World) {
	for _, v := range c.replaces {
		world.AddSingleton(v)
	}
	for _, fn := range c.defers {
		fn()
	}

	c.replaces = c.replaces[:0]
	c.defers = c.defers[:0]
}
