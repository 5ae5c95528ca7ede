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


// Package storage provides the storage abstraction layer for berkut.
//
// This package defines repository interfaces that decouple storage
// implementation from the import pipeline and the searcher. The material
// collection is treated as a single compare-and-swap unit: the import
// pipeline clears it and repopulates it in bounded chunks, and search
// performs a full ordered scan; there is no incremental per-record update.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the interfaces defined here
// to keep consumers decoupled from a concrete engine:
//
//	repo, err := badger.NewMaterialRepository(backend)  // storage.MaterialRepository
//
// # Usage
//
// Create a backend and repositories:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Use in tests with in-memory storage:
//
//	materials, settings, backend, err := badger.NewMemoryRepositories()
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
