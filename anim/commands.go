package anim

// Commands buffers registry changes requested while animators are being ticked.
// The scheduler flushes them once the pass is over, so listeners can spawn and
// cancel animators without disturbing the iteration in progress.
type Commands struct {
	spawns  []spawnCommand
	cancels []Handle
	defers  []func()
}

type spawnCommand struct {
	animator *Animator
	owner    uint64
	owned    bool
	result   *Handle
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an animator for registration. If handle is not nil it receives the new
// handle when the buffer is flushed.
func (c *Commands) Spawn(a *Animator, handle *Handle) {
	c.spawns = append(c.spawns, spawnCommand{animator: a, result: handle})
}

// SpawnOwned queues an animator for registration attached to owner.
func (c *Commands) SpawnOwned(owner uint64, a *Animator, handle *Handle) {
	c.spawns = append(c.spawns, spawnCommand{animator: a, owner: owner, owned: true, result: handle})
}

// Cancel queues a cancellation.
func (c *Commands) Cancel(h Handle) {
	c.cancels = append(c.cancels, h)
}

// Defer queues a function to run after the other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.cancels) + len(c.defers)
}

// Flush applies all queued commands to the scheduler and resets the buffer.
// Commands queued while flushing are applied in the same call.
func (c *Commands) Flush(s *Scheduler) {
	for c.Len() > 0 {
		cancels := c.cancels
		spawns := c.spawns
		defers := c.defers
		c.cancels, c.spawns, c.defers = nil, nil, nil

		for _, h := range cancels {
			s.Cancel(h)
		}

		for _, cmd := range spawns {
			var h Handle
			if cmd.owned {
				h = s.SpawnOwned(cmd.owner, cmd.animator)
			} else {
				h = s.Spawn(cmd.animator)
			}
			if cmd.result != nil {
				*cmd.result = h
			}
		}

		for _, fn := range defers {
			fn()
		}
	}
}
