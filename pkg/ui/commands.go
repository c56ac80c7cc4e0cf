package ui

// Command is a deferred structural-change request. Callbacks append
// commands instead of mutating the graph while the router is mid-dispatch;
// the queue is drained once dispatch for the current event has completed.
// The set of implementations is closed.
type Command interface {
	isCommand()
}

// SetParentCommand reparents Child under Parent; a nil Parent handle makes
// the child top-level.
type SetParentCommand struct {
	Child  Handle
	Parent Handle
}

// RemoveCommand removes Target and its subtree.
type RemoveCommand struct {
	Target Handle
}

// FocusCommand moves focus to Target.
type FocusCommand struct {
	Target Handle
}

// ShowCommand makes Target visible.
type ShowCommand struct {
	Target Handle
}

// HideCommand hides Target.
type HideCommand struct {
	Target Handle
}

func (SetParentCommand) isCommand() {}
func (RemoveCommand) isCommand()    {}
func (FocusCommand) isCommand()     {}
func (ShowCommand) isCommand()      {}
func (HideCommand) isCommand()      {}

// CommandQueue collects commands emitted during callback dispatch.
type CommandQueue struct {
	commands []Command
}

// Push appends a command to the queue.
func (q *CommandQueue) Push(cmd Command) {
	q.commands = append(q.commands, cmd)
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.commands)
}

// take empties the queue and returns what it held.
func (q *CommandQueue) take() []Command {
	cmds := q.commands
	q.commands = nil
	return cmds
}
