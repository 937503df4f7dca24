// Package source decodes vendor play-by-play documents into games.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/okian/courtside/internal/domain/model"
	"github.com/okian/courtside/internal/domain/normalize"
)

// Sentinel error kinds for this package.
var (
	ErrReadSource = errors.New("read source failed")
	ErrDecode     = errors.New("decode game failed")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source yields one game.
type Source interface {
	Game(ctx context.Context) (model.Game, error)
}

// File reads a game document from disk on every call.
type File struct {
	Path string
}

// Game implements Source.
func (f File) Game(ctx context.Context) (model.Game, error) {
	if err := ctx.Err(); err != nil {
		return model.Game{}, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return model.Game{}, fmt.Errorf("%w: %s: %w", ErrReadSource, f.Path, err)
	}
	return Decode(b)
}

// Reader decodes a game document from R once.
type Reader struct {
	R io.Reader
}

// Game implements Source.
func (r Reader) Game(ctx context.Context) (model.Game, error) {
	if err := ctx.Err(); err != nil {
		return model.Game{}, err
	}
	b, err := io.ReadAll(r.R)
	if err != nil {
		return model.Game{}, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	return Decode(b)
}

// Bytes serves an in-memory game document.
type Bytes []byte

// Game implements Source.
func (b Bytes) Game(ctx context.Context) (model.Game, error) {
	if err := ctx.Err(); err != nil {
		return model.Game{}, err
	}
	return Decode(b)
}

// Decode parses a document of the form {"gameId": ..., "actions": [...]}.
// A document wrapped as {"game": {...}} is accepted too. Unknown fields are
// ignored and loosely typed values are normalized per event. Action elements
// that are not objects are skipped; the survivors keep their array position
// as the sequence fallback.
func Decode(b []byte) (model.Game, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return model.Game{}, fmt.Errorf("%w: empty document", ErrDecode)
	}
	var raw rawDocument
	if err := json.Unmarshal(b, &raw); err != nil {
		return model.Game{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if raw.Game != nil && len(raw.Actions) == 0 {
		raw = *raw.Game
	}

	events := make([]model.Event, 0, len(raw.Actions))
	for i, msg := range raw.Actions {
		trimmed := bytes.TrimSpace(msg)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var ev model.RawEvent
		if err := json.Unmarshal(trimmed, &ev); err != nil {
			continue
		}
		events = append(events, model.FromRaw(ev, i))
	}
	return model.Game{GameID: normalize.Text(raw.GameID), Events: events}, nil
}

type rawDocument struct {
	GameID  any                   `json:"gameId"`
	Actions []jsoniter.RawMessage `json:"actions"`
	Game    *rawDocument          `json:"game"`
}

// Encode writes raw as an indented vendor document.
func Encode(w io.Writer, raw model.RawGame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encode game: %w", err)
	}
	return nil
}
