package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"ownerhunter/internal/types"
)

// Input failures. Each is fatal to a run.
var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInputUnreadable = errors.New("input unreadable")
	ErrInputMalformed  = errors.New("input malformed")
)

// Source yields the masterlist entities for one run.
type Source interface {
	Entities(ctx context.Context) ([]types.EntityRecord, error)
}

// JSONFile reads entities from a masterlist export on disk.
type JSONFile struct {
	Path   string
	Logger *zap.Logger
}

// NewJSONFile returns a Source backed by the JSON file at path.
func NewJSONFile(path string, logger *zap.Logger) *JSONFile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONFile{Path: path, Logger: logger}
}

// Entities reads and decodes the whole file.
func (f *JSONFile) Entities(ctx context.Context) ([]types.EntityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.Logger.Info("loading masterlist", zap.String("path", f.Path))

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, f.Path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInputUnreadable, f.Path, err)
	}

	entities, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	f.Logger.Info("loaded masterlist", zap.String("path", f.Path), zap.Int("entities", len(entities)))
	return entities, nil
}

// Decode parses a masterlist document. It accepts either {"entities": [...]} or a bare
// array of entities; an object without "entities" yields no records.
func Decode(data []byte) ([]types.EntityRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInputMalformed)
	}

	var entities []types.EntityRecord
	switch trimmed[0] {
	case '{':
		var doc struct {
			Entities []types.EntityRecord `json:"entities"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
		}
		entities = doc.Entities
	case '[':
		if err := json.Unmarshal(trimmed, &entities); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
		}
	default:
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("%w: invalid JSON", ErrInputMalformed)
		}
		return nil, fmt.Errorf("%w: top-level value must be an object or an array", ErrInputMalformed)
	}

	if entities == nil {
		entities = []types.EntityRecord{}
	}
	return entities, nil
}
