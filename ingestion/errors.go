package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrMaterialRepositoryRequired is returned when a material repository is not provided.
	ErrMaterialRepositoryRequired = errors.New("material repository required")

	// ErrSettingsRepositoryRequired is returned when a settings repository is not provided.
	ErrSettingsRepositoryRequired = errors.New("settings repository required")

	// ErrNoContent indicates that no source content was supplied.
	ErrNoContent = errors.New("no source content supplied")

	// ErrBadHeader indicates a malformed delimited-table header row.
	ErrBadHeader = errors.New(`malformed table header: expected columns "#", "Материал", "Дата включения"`)

	// ErrNoRecords indicates that well-formed input produced zero usable records.
	ErrNoRecords = errors.New("source contains no usable records")

	// ErrEmptyCollection indicates the material collection is empty when it
	// should not be.
	ErrEmptyCollection = errors.New("material collection is empty")
)

// ChunkError reports a failed chunk write during import. Chunks already
// committed stay committed: the collection is left partially rebuilt and the
// caller must re-run a full import.
type ChunkError struct {
	Chunk   int // zero-based ordinal of the failed chunk
	Written int // records committed by earlier chunks
	Err     error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("import chunk %d failed after %d records committed: %v", e.Chunk, e.Written, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
