package storage

import (
	"context"

	"github.com/poiesic/berkut/core"
)

// MaterialRepository provides operations for the material collection.
// The collection is rebuilt as a whole by the import pipeline: there is no
// per-record update operation, only clear-then-repopulate in chunks.
type MaterialRepository interface {
	// CountMaterials returns the number of stored materials.
	CountMaterials(ctx context.Context) (int, error)

	// ClearMaterials removes every material from the collection.
	ClearMaterials(ctx context.Context) error

	// PutMaterials writes one chunk of materials in a single transaction.
	// The chunk either fully commits or fails as a whole; no partial-chunk
	// records persist.
	PutMaterials(ctx context.Context, materials ...*core.Material) error

	// ScanMaterials returns every stored material, ordered by ascending id.
	ScanMaterials(ctx context.Context) ([]*core.Material, error)

	// Close releases repository resources.
	Close() error
}

// SettingsRepository provides access to the single settings record.
type SettingsRepository interface {
	// GetSettings returns the stored settings, or core.DefaultSettings()
	// when none have been saved yet.
	GetSettings(ctx context.Context) (*core.Settings, error)

	// PutSettings stores the settings record, replacing any previous one.
	PutSettings(ctx context.Context, settings *core.Settings) error
}
