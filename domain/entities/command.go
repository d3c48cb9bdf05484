package entities

// CommandResult holds the structured response for one executed CLI command
type CommandResult map[string]any

// EnableEntry is the privileged-mode entry element sent as the first item
// of every command batch
type EnableEntry struct {
	Cmd   string `json:"cmd"`
	Input string `json:"input"`
}
