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


package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/storage"
)

// SettingsRepository implements storage.SettingsRepository for BadgerDB.
type SettingsRepository struct {
	backend *Backend
}

var _ storage.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(backend *Backend) *SettingsRepository {
	return &SettingsRepository{
		backend: backend,
	}
}

// GetSettings retrieves the settings record.
// Returns core.DefaultSettings() when none have been saved yet.
func (r *SettingsRepository) GetSettings(ctx context.Context) (*core.Settings, error) {
	var settings *core.Settings
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSettingsKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			settings, unmarshalErr = storage.UnmarshalSettings(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		return core.DefaultSettings(), nil
	}
	return settings, nil
}

// PutSettings stores the settings record, replacing any previous one.
func (r *SettingsRepository) PutSettings(ctx context.Context, settings *core.Settings) error {
	if err := core.ValidateSettings(settings); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalSettings(settings)
		if err := tx.Set(makeSettingsKey(), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
