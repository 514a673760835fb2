package agent

import "fmt"

// UnknownToolError means the provider requested a tool that is not in
// the runner's registry. The run fails and no partial turn is committed.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// ValidationError means the provider-supplied arguments for a tool call
// did not satisfy the tool's input schema.
type ValidationError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid arguments for tool %q: parameter %q: %s", e.Tool, e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, e.Reason)
}

// ToolLoopError means the provider kept requesting tools past the
// configured round bound.
type ToolLoopError struct {
	Rounds int
}

func (e *ToolLoopError) Error() string {
	return fmt.Sprintf("tool loop exceeded %d rounds", e.Rounds)
}
