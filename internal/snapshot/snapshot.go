// Package snapshot encodes match state for the transport and storage
// boundary: a versioned JSON document that round-trips losslessly.
// Field order follows the struct definitions and map keys serialize
// sorted, so equal states always encode to identical bytes.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gridtactics/tactics/internal/game"
)

// Version is the current snapshot document version.
const Version = 1

// ErrUnsupportedVersion is returned for documents written by a newer
// or unknown format revision.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

type document struct {
	Version int            `json:"version"`
	State   game.GameState `json:"state"`
}

// Encode serializes a match state into a versioned document.
func Encode(state game.GameState) ([]byte, error) {
	data, err := json.Marshal(document{Version: Version, State: state})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a versioned document back into a match state.
func Decode(data []byte) (game.GameState, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return game.GameState{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version != Version {
		return game.GameState{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return doc.State, nil
}
