// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package berkut

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/ingestion"
	"github.com/poiesic/berkut/search"
	"github.com/poiesic/berkut/storage"
	"github.com/poiesic/berkut/storage/badger"
)

// ErrEmptyDatabase indicates the material collection is empty or unreadable
// at integrity-check time.
var ErrEmptyDatabase = errors.New("database is empty")

// Database bundles the storage backend with the import pipeline and the
// searcher. It is the single entry point for callers: UI and extension glue
// talk to this type only.
type Database struct {
	backend      *badger.Backend
	materialRepo storage.MaterialRepository
	settingsRepo storage.SettingsRepository
	pipeline     *ingestion.Pipeline
	searcher     *search.Searcher
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	pipelineOpts []ingestion.Option
	searchOpts   []search.Option
	logger       *slog.Logger
}

// WithPipelineOptions forwards options to the import pipeline.
func WithPipelineOptions(opts ...ingestion.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.pipelineOpts = append(o.pipelineOpts, opts...)
	}
}

// WithSearchOptions forwards options to the searcher.
func WithSearchOptions(opts ...search.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// WithLogger sets a custom logger for the database and its components.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDatabase opens (or creates) a database at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	return newDatabase(filePath, false, opts...)
}

// NewMemoryDatabase creates an in-memory database, primarily for tests.
func NewMemoryDatabase(opts ...DatabaseOption) (*Database, error) {
	return newDatabase("", true, opts...)
}

func newDatabase(filePath string, inMemory bool, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	materialRepo := badger.NewMaterialRepository(backend)
	settingsRepo := badger.NewSettingsRepository(backend)

	pipelineOpts := append([]ingestion.Option{ingestion.WithLogger(options.logger)}, options.pipelineOpts...)
	pipeline, err := ingestion.NewPipeline(materialRepo, settingsRepo, pipelineOpts...)
	if err != nil {
		materialRepo.Close()
		backend.Close()
		return nil, err
	}

	searchOpts := append([]search.Option{search.WithLogger(options.logger)}, options.searchOpts...)
	searcher, err := search.NewSearcher(materialRepo, searchOpts...)
	if err != nil {
		pipeline.Release()
		materialRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		materialRepo: materialRepo,
		settingsRepo: settingsRepo,
		pipeline:     pipeline,
		searcher:     searcher,
		logger:       options.logger,
	}, nil
}

// Close releases the pipeline and closes the storage backend.
func (db *Database) Close() error {
	db.pipeline.Release()

	if err := db.materialRepo.Close(); err != nil {
		db.logger.Error("error closing material repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Import parses raw content and rebuilds the material collection.
func (db *Database) Import(ctx context.Context, kind core.SourceKind, label, content string) (*ingestion.ImportResult, error) {
	return db.pipeline.Import(ctx, kind, label, content)
}

// Update reimports content only when it differs from the stored content hash.
func (db *Database) Update(ctx context.Context, label, content string) (*ingestion.UpdateResult, error) {
	return db.pipeline.Update(ctx, label, content)
}

// Search runs a query against the material collection.
func (db *Database) Search(ctx context.Context, query string) ([]*core.SearchResult, error) {
	return db.searcher.Search(ctx, query)
}

// CheckIntegrity verifies the material collection is readable and non-empty.
// Returns the record count, or ErrEmptyDatabase when the collection is empty.
func (db *Database) CheckIntegrity(ctx context.Context) (int, error) {
	count, err := db.materialRepo.CountMaterials(ctx)
	if err != nil {
		return 0, fmt.Errorf("integrity check: %w", err)
	}
	if count == 0 {
		return 0, ErrEmptyDatabase
	}
	return count, nil
}

// Settings returns the stored settings record, or defaults before any import.
func (db *Database) Settings(ctx context.Context) (*core.Settings, error) {
	return db.settingsRepo.GetSettings(ctx)
}

// SaveSettings stores the settings record.
func (db *Database) SaveSettings(ctx context.Context, settings *core.Settings) error {
	return db.settingsRepo.PutSettings(ctx, settings)
}

// DeleteAll tears down the whole database: materials and settings.
func (db *Database) DeleteAll(ctx context.Context) error {
	return db.backend.DeleteAll()
}

// MaterialRepository exposes the material repository for advanced callers.
func (db *Database) MaterialRepository() storage.MaterialRepository {
	return db.materialRepo
}

// SettingsRepository exposes the settings repository for advanced callers.
func (db *Database) SettingsRepository() storage.SettingsRepository {
	return db.settingsRepo
}

// NewSearcher builds a searcher with custom options over this database.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.materialRepo, opts...)
}

// NewImportPipeline builds an import pipeline with custom options over this
// database. The caller owns the returned pipeline and must Release it.
func (db *Database) NewImportPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.materialRepo, db.settingsRepo, opts...)
}
