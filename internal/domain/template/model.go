// Package template manages saved report templates: full Observation
// snapshots an operator loads to pre-fill a session. Presets ship with
// the system and are read-only; user templates are created from live
// sessions.
package template

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	KindPreset = "preset"
	KindUser   = "user"
)

// Template is one stored snapshot, keyed to the exam domain it was
// saved from. Payload holds the serialized Observation snapshot.
type Template struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Domain    string          `json:"domain"`
	Kind      string          `json:"kind"`
	Version   int             `json:"version"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
