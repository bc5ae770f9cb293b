package spectator

import (
	"google.golang.org/protobuf/types/known/structpb"

	"warped/game"
)

// Frame is one update sent to spectators
type Frame struct {
	// Session is a sortable id that changes with every new session
	Session string `json:"session"`

	// Event is the action that produced the frame, "start" for the first one
	Event string `json:"event"`

	game.Snapshot
}

// Proto converts the frame for binary clients
func (f Frame) Proto() (*structpb.Struct, error) {
	entities := make(map[string]interface{}, len(f.Entities))
	for kind, n := range f.Entities {
		entities[kind] = n
	}
	return structpb.NewStruct(map[string]interface{}{
		"session":     f.Session,
		"event":       f.Event,
		"tick":        f.Tick,
		"score":       f.Score,
		"lives":       f.Lives,
		"laser_level": f.LaserLevel,
		"immortal":    f.Immortal,
		"game_over":   f.GameOver,
		"entities":    entities,
	})
}
