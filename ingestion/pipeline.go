package ingestion

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/storage"
)

// chunkSize bounds how many records one store write carries. Chunking exists
// to bound peak memory and transaction size for large corpora, not for
// correctness: a chunk commits atomically, the rebuild as a whole does not.
const chunkSize = 250

// Pipeline turns raw source content into indexed materials and rebuilds the
// store. The rebuild treats the material collection as a single
// compare-and-swap unit: clear, then repopulate in chunks.
type Pipeline struct {
	materials      storage.MaterialRepository
	settings       storage.SettingsRepository
	indexPool      *ants.Pool
	progressWriter io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent word-index builds.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.indexPool != nil {
			p.indexPool.Release()
		}

		indexPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.indexPool = indexPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithProgress enables progress reporting during chunked writes.
// Reports to writer every reportInterval records.
func WithProgress(writer io.Writer, reportInterval int) Option {
	return func(p *Pipeline) error {
		if reportInterval < 1 {
			reportInterval = chunkSize
		}
		p.progressWriter = writer
		p.reportInterval = reportInterval
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(materials storage.MaterialRepository, settings storage.SettingsRepository, opts ...Option) (*Pipeline, error) {
	if materials == nil {
		return nil, ErrMaterialRepositoryRequired
	}
	if settings == nil {
		return nil, ErrSettingsRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	indexPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		materials: materials,
		settings:  settings,
		indexPool: indexPool,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// ImportResult reports an accepted import.
type ImportResult struct {
	RecordCount int
}

// UpdateResult reports the outcome of an update run.
type UpdateResult struct {
	Updated    bool
	NewRecords int // net change in record count, may be negative
}

// Import parses raw content, builds word indexes, and rebuilds the material
// collection: clear, then write in chunks of 250. A chunk either fully
// commits or the import fails at that chunk with a ChunkError; committed
// chunks are not rolled back. On success the settings record is updated with
// the content hash, source kind, and source label.
func (p *Pipeline) Import(ctx context.Context, kind core.SourceKind, label, content string) (*ImportResult, error) {
	if content == "" {
		return nil, ErrNoContent
	}

	materials, err := ParseSource(kind, content)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, ErrNoRecords
	}
	p.logger.Info("parsed source", "label", label, "records", len(materials))

	p.buildIndexes(materials)

	if err := p.materials.ClearMaterials(ctx); err != nil {
		return nil, err
	}

	var tracker *ProgressTracker
	if p.progressWriter != nil {
		tracker = NewProgressTracker(p.progressWriter, len(materials), p.reportInterval)
		tracker.Start()
	}

	for start := 0; start < len(materials); start += chunkSize {
		end := start + chunkSize
		if end > len(materials) {
			end = len(materials)
		}
		if err := p.materials.PutMaterials(ctx, materials[start:end]...); err != nil {
			p.logger.Error("chunk write failed", "chunk", start/chunkSize, "written", start, "err", err)
			return nil, &ChunkError{Chunk: start / chunkSize, Written: start, Err: err}
		}
		if tracker != nil {
			tracker.Update(end)
		}
	}
	if tracker != nil {
		tracker.Finish()
	}

	settings, err := p.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.Source = kind
	settings.SourceLabel = label
	settings.ContentHash = core.HashContent(content)
	if err := p.settings.PutSettings(ctx, settings); err != nil {
		return nil, err
	}

	p.logger.Info("import complete", "records", len(materials))
	return &ImportResult{RecordCount: len(materials)}, nil
}

// Update compares newly supplied content against the stored content hash.
// Unchanged content skips the reimport and only verifies the collection is
// non-empty; changed content triggers a full import and the result reports
// the net change in record count.
func (p *Pipeline) Update(ctx context.Context, label, content string) (*UpdateResult, error) {
	if content == "" {
		return nil, ErrNoContent
	}

	settings, err := p.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if core.HashContent(content) == settings.ContentHash {
		count, err := p.materials.CountMaterials(ctx)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrEmptyCollection
		}
		p.logger.Info("content unchanged, skipping reimport", "records", count)
		return &UpdateResult{Updated: false}, nil
	}

	oldCount, err := p.materials.CountMaterials(ctx)
	if err != nil {
		return nil, err
	}

	result, err := p.Import(ctx, settings.Source, label, content)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{
		Updated:    true,
		NewRecords: result.RecordCount - oldCount,
	}, nil
}

// buildIndexes derives every material's word index on the worker pool.
// The fan-out joins before any store write, so the rebuild stays logically
// sequential from the store's point of view.
func (p *Pipeline) buildIndexes(materials []*core.Material) {
	var wg sync.WaitGroup
	for _, material := range materials {
		material := material
		wg.Add(1)
		task := func() {
			defer wg.Done()
			material.WordIndex = core.BuildWordIndex(material.Text)
		}
		if err := p.indexPool.Submit(task); err != nil {
			// Pool unavailable, build inline
			task()
		}
	}
	wg.Wait()
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.indexPool != nil {
		p.indexPool.Release()
	}
}
