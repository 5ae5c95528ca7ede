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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidMaterial indicates a Material failed validation.
	ErrInvalidMaterial = errors.New("invalid material")

	// ErrZeroID indicates a material id of zero, which the source formats never produce.
	ErrZeroID = errors.New("material id must be positive")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("material text cannot be empty")

	// ErrInvalidSettings indicates a Settings record failed validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInvalidSourceKind indicates an unrecognized SourceKind value.
	ErrInvalidSourceKind = errors.New("invalid source kind")
)
