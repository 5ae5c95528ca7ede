package berkut

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/ingestion"
	"github.com/poiesic/berkut/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		assert.NotNil(t, db.MaterialRepository())
		assert.NotNil(t, db.SettingsRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A file path where a directory is expected
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	searcher, err := db.NewSearcher()
	require.NoError(t, err)
	assert.NotNil(t, searcher)

	pipeline, err := db.NewImportPipeline()
	require.NoError(t, err)
	assert.NotNil(t, pipeline)
	pipeline.Release()
}

func TestDatabase_ImportAndSearch(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	content := "Экстремистский материал №5: Test material about drugs (решение суда от 01.01.2020);\n" +
		"Экстремистский материал №6: Совсем другая запись реестра;\n"

	result, err := db.Import(ctx, core.SourceStructuredText, "реестр.txt", content)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)

	t.Run("exact query", func(t *testing.T) {
		results, err := db.Search(ctx, "drugs")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(5), results[0].Material.Id)
		assert.Equal(t, "01.01.2020", results[0].Material.Date)
		assert.Equal(t, 1.0, results[0].Similarity)
		assert.False(t, results[0].Typo)
	})

	t.Run("transposed query", func(t *testing.T) {
		results, err := db.Search(ctx, "drgus")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, core.ID(5), results[0].Material.Id)
		assert.GreaterOrEqual(t, results[0].Similarity, 0.6)
		assert.Less(t, results[0].Similarity, 1.0)
		assert.True(t, results[0].Typo)
	})

	t.Run("query with no matches", func(t *testing.T) {
		results, err := db.Search(ctx, "кинематограф")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestDatabase_UpdateFlow(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	content := "Экстремистский материал №1: Первая запись;\n"

	_, err = db.Import(ctx, core.SourceStructuredText, "реестр", content)
	require.NoError(t, err)

	unchanged, err := db.Update(ctx, "реестр", content)
	require.NoError(t, err)
	assert.False(t, unchanged.Updated)

	grown := content + "Экстремистский материал №2: Вторая запись;\n"
	changed, err := db.Update(ctx, "реестр", grown)
	require.NoError(t, err)
	assert.True(t, changed.Updated)
	assert.Equal(t, 1, changed.NewRecords)
}

func TestDatabase_CheckIntegrity(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	_, err = db.CheckIntegrity(ctx)
	assert.ErrorIs(t, err, ErrEmptyDatabase)

	_, err = db.Import(ctx, core.SourceStructuredText, "реестр",
		"Экстремистский материал №1: Запись реестра;\n")
	require.NoError(t, err)

	count, err := db.CheckIntegrity(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDatabase_Settings(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	settings, err := db.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultSettings(), settings)

	settings.AutoUpdate = false
	settings.SourceLabel = "ручной реестр"
	require.NoError(t, db.SaveSettings(ctx, settings))

	stored, err := db.Settings(ctx)
	require.NoError(t, err)
	assert.False(t, stored.AutoUpdate)
	assert.Equal(t, "ручной реестр", stored.SourceLabel)
}

func TestDatabase_DeleteAll(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	_, err = db.Import(ctx, core.SourceStructuredText, "реестр",
		"Экстремистский материал №1: Запись реестра;\n")
	require.NoError(t, err)

	require.NoError(t, db.DeleteAll(ctx))

	_, err = db.CheckIntegrity(ctx)
	assert.ErrorIs(t, err, ErrEmptyDatabase)

	settings, err := db.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultSettings(), settings)
}

func TestDatabase_Options(t *testing.T) {
	log := search.NewQueryLog()
	db, err := NewMemoryDatabase(
		WithSearchOptions(search.WithQueryLog(log)),
		WithPipelineOptions(ingestion.WithPoolSize(1)),
	)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	_, err = db.Import(ctx, core.SourceStructuredText, "реестр",
		"Экстремистский материал №1: Запись про материал;\n")
	require.NoError(t, err)

	results, err := db.Search(ctx, "материал")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	logged, ok := log.Get("материал")
	require.True(t, ok)
	assert.Equal(t, results, logged)
}
