package frontend

// DebugState holds debug flags that persist across sessions
type DebugState struct {
	ShowBounds bool // Outline every visual's collision box
	ShowCounts bool // Live entity counts per kind
}

// Global debug state instance (persists across sessions)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
