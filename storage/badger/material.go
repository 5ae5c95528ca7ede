package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/storage"
)

// MaterialRepository implements storage.MaterialRepository for BadgerDB.
type MaterialRepository struct {
	backend *Backend
}

var _ storage.MaterialRepository = (*MaterialRepository)(nil)

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(backend *Backend) *MaterialRepository {
	return &MaterialRepository{
		backend: backend,
	}
}

// Close releases repository resources. Nothing to release beyond the backend,
// which is owned by the caller.
func (r *MaterialRepository) Close() error {
	return nil
}

// CountMaterials returns the number of stored materials.
func (r *MaterialRepository) CountMaterials(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = materialKeyPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ClearMaterials removes every material from the collection.
func (r *MaterialRepository) ClearMaterials(ctx context.Context) error {
	return r.backend.DropPrefix(materialKeyPrefix())
}

// PutMaterials writes one chunk of materials in a single transaction.
// The chunk commits as a whole or not at all.
func (r *MaterialRepository) PutMaterials(ctx context.Context, materials ...*core.Material) error {
	if len(materials) == 0 {
		return nil
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		seen := make(map[core.ID]bool, len(materials))
		for _, material := range materials {
			if err := core.ValidateMaterial(material); err != nil {
				return err
			}
			if seen[material.Id] {
				return fmt.Errorf("%w: material %d", storage.ErrDuplicateKey, material.Id)
			}
			seen[material.Id] = true

			key := makeMaterialKey(material.Id)
			value := storage.MarshalMaterial(material)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ScanMaterials returns every stored material in ascending id order.
// Key order gives id order because material keys embed the id in BigEndian.
func (r *MaterialRepository) ScanMaterials(ctx context.Context) ([]*core.Material, error) {
	var materials []*core.Material

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = materialKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			err := item.Value(func(val []byte) error {
				material, err := storage.UnmarshalMaterial(val)
				if err != nil {
					return err
				}
				materials = append(materials, material)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return materials, nil
}
