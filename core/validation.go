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

import "fmt"

// ValidateMaterial validates a Material according to domain rules.
//
// Validation rules:
//   - Id must be positive (ids come from the imported source, never a sequence)
//   - Text must not be empty
//
// NOT validated:
//   - Date (free-text label, DateUnspecified is a valid value)
//   - WordIndex (derived from Text by the import pipeline; may be empty for
//     texts that normalize to nothing)
func ValidateMaterial(material *Material) error {
	if material == nil {
		return fmt.Errorf("%w: material is nil", ErrInvalidMaterial)
	}

	if material.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrZeroID)
	}

	if material.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrEmptyText)
	}

	return nil
}

// ValidateSettings validates a Settings record.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings is nil", ErrInvalidSettings)
	}

	if err := ValidateSourceKind(settings.Source); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return nil
}

// ValidateSourceKind validates that a SourceKind has a valid value.
func ValidateSourceKind(kind SourceKind) error {
	if kind != SourceStructuredText && kind != SourceDelimitedTable {
		return fmt.Errorf("%w: value %d", ErrInvalidSourceKind, kind)
	}
	return nil
}
