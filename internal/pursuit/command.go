package pursuit

import "github.com/charmbracelet/log"

// CommandCapacity is the number of directional commands a buffer may hold.
const CommandCapacity = 1

// CommandBuffer holds the most recent directional request that could not be
// honored yet. A newer request always replaces an older one.
type CommandBuffer struct {
	cmds   []Direction
	logger *log.Logger
	owner  string
}

// NewCommandBuffer creates an empty buffer. Warnings are tagged with owner.
func NewCommandBuffer(logger *log.Logger, owner string) *CommandBuffer {
	return &CommandBuffer{
		cmds:   make([]Direction, 0, CommandCapacity),
		logger: logger,
		owner:  owner,
	}
}

// Store replaces any pending command with d.
func (b *CommandBuffer) Store(d Direction) {
	b.cmds = append(b.cmds[:0], d)
	if len(b.cmds) > CommandCapacity {
		b.Truncate("store exceeded capacity")
	}
}

// HasCommand reports whether a command is pending.
func (b *CommandBuffer) HasCommand() bool {
	return len(b.cmds) > 0
}

// Len returns the number of pending commands.
func (b *CommandBuffer) Len() int {
	return len(b.cmds)
}

// Peek returns the pending command without removing it.
func (b *CommandBuffer) Peek() (Direction, bool) {
	if len(b.cmds) == 0 {
		return 0, false
	}
	return b.cmds[0], true
}

// Consume removes and returns the pending command.
// Entries left behind after the pop break the single-slot invariant; they are
// discarded and reported.
func (b *CommandBuffer) Consume() (Direction, bool) {
	if len(b.cmds) == 0 {
		return 0, false
	}
	d := b.cmds[0]
	b.cmds = b.cmds[1:]
	if len(b.cmds) > 0 {
		b.Truncate("residual commands after consume")
	}
	return d, true
}

// Truncate drops every pending command and logs a data-consistency warning.
func (b *CommandBuffer) Truncate(reason string) {
	if b.logger != nil {
		b.logger.Warn("command buffer truncated",
			"agent", b.owner,
			"reason", reason,
			"dropped", len(b.cmds),
		)
	}
	b.Clear()
}

// Clear drops every pending command silently.
func (b *CommandBuffer) Clear() {
	b.cmds = b.cmds[:0]
}
