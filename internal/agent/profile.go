package agent

// Profile defines a named agent configuration with a scoped toolset.
type Profile struct {
	Name          string
	SystemPrompt  string
	Tools         []string // tool names; empty = all tools
	MaxToolRounds int      // 0 = runner default
}
