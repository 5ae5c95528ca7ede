package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/berkut/core"
)

func TestSettingsRepository_DefaultWhenUnset(t *testing.T) {
	materialRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("failed to create repositories: %v", err)
	}
	defer func() {
		materialRepo.Close()
		backend.Close()
	}()

	settings, err := settingsRepo.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}

	defaults := core.DefaultSettings()
	if *settings != *defaults {
		t.Errorf("expected default settings %+v, got %+v", defaults, settings)
	}
}

func TestSettingsRepository_RoundTrip(t *testing.T) {
	materialRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("failed to create repositories: %v", err)
	}
	defer func() {
		materialRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	saved := &core.Settings{
		Source:      core.SourceDelimitedTable,
		SourceLabel: "реестр.csv",
		ContentHash: core.HashContent("содержимое"),
		AutoUpdate:  false,
	}
	if err := settingsRepo.PutSettings(ctx, saved); err != nil {
		t.Fatalf("failed to put settings: %v", err)
	}

	loaded, err := settingsRepo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("expected %+v, got %+v", saved, loaded)
	}

	// A second put replaces the record.
	saved.SourceLabel = "реестр-v2.csv"
	if err := settingsRepo.PutSettings(ctx, saved); err != nil {
		t.Fatalf("failed to replace settings: %v", err)
	}
	loaded, err = settingsRepo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if loaded.SourceLabel != "реестр-v2.csv" {
		t.Errorf("expected replaced label, got %q", loaded.SourceLabel)
	}
}

func TestSettingsRepository_PutValidation(t *testing.T) {
	materialRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("failed to create repositories: %v", err)
	}
	defer func() {
		materialRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	if err := settingsRepo.PutSettings(ctx, nil); !errors.Is(err, core.ErrInvalidSettings) {
		t.Errorf("expected ErrInvalidSettings for nil settings, got %v", err)
	}

	bad := &core.Settings{Source: core.SourceKind(77)}
	if err := settingsRepo.PutSettings(ctx, bad); !errors.Is(err, core.ErrInvalidSourceKind) {
		t.Errorf("expected ErrInvalidSourceKind, got %v", err)
	}
}
