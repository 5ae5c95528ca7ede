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


package ingestion

import (
	"testing"

	"github.com/poiesic/berkut/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredText(t *testing.T) {
	content := "Экстремистский материал №1: Книга первая (решение суда от 01.02.2003);\n" +
		"Экстремистский материал №2: Листовка вторая;\n" +
		"Экстремистский материал №3: Брошюра третья. Исключен;\n"

	materials, err := ParseSource(core.SourceStructuredText, content)
	require.NoError(t, err)
	require.Len(t, materials, 2)

	assert.Equal(t, core.ID(1), materials[0].Id)
	assert.Equal(t, "01.02.2003", materials[0].Date)
	assert.Contains(t, materials[0].Text, "Книга первая")

	assert.Equal(t, core.ID(2), materials[1].Id)
	assert.Equal(t, core.DateUnspecified, materials[1].Date)
	assert.Contains(t, materials[1].Text, "Листовка вторая")
}

func TestParseStructuredText_ExclusionMarkerDropsAnyID(t *testing.T) {
	// In the plain-text dump the marker drops the entry regardless of id;
	// the legacy id threshold applies to delimited tables only.
	content := "Экстремистский материал №50: Старая запись. Исключен;\n" +
		"Экстремистский материал №5000: Новая запись. Исключен;\n" +
		"Экстремистский материал №60: Обычная запись;\n"

	materials, err := ParseSource(core.SourceStructuredText, content)
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, core.ID(60), materials[0].Id)
}

func TestParseStructuredText_MalformedSections(t *testing.T) {
	content := "Преамбула без делимитера.\n" +
		"Экстремистский материал №без номера: текст;\n" +
		"Экстремистский материал №7: Настоящая запись;\n"

	materials, err := ParseSource(core.SourceStructuredText, content)
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, core.ID(7), materials[0].Id)
}

func TestParseStructuredText_NoDelimiters(t *testing.T) {
	materials, err := ParseSource(core.SourceStructuredText, "просто текст без записей")
	require.NoError(t, err)
	assert.Empty(t, materials)
}

func TestParseDelimitedTable(t *testing.T) {
	content := "#;Материал;Дата включения в реестр\n" +
		"10;Книга первая;01.02.2003\n" +
		"11;;\n" +
		"итого;строка сводки;\n" +
		"12;Листовка вторая;05.06.2007\n"

	materials, err := ParseSource(core.SourceDelimitedTable, content)
	require.NoError(t, err)
	require.Len(t, materials, 3)

	assert.Equal(t, core.ID(10), materials[0].Id)
	assert.Equal(t, "Книга первая", materials[0].Text)
	assert.Equal(t, "01.02.2003", materials[0].Date)

	// Empty cells fall back to the placeholder labels.
	assert.Equal(t, core.ID(11), materials[1].Id)
	assert.Equal(t, "Не указано", materials[1].Text)
	assert.Equal(t, core.DateUnspecified, materials[1].Date)

	assert.Equal(t, core.ID(12), materials[2].Id)
}

func TestParseDelimitedTable_ExclusionThreshold(t *testing.T) {
	// The marker only drops rows at or above the legacy id threshold; earlier
	// rows were republished with the marker inline and stay imported.
	content := "#;Материал;Дата включения в реестр\n" +
		"1087;Старая запись (Исключен);01.01.2000\n" +
		"1088;Пограничная запись (Исключен);01.01.2000\n" +
		"2000;Поздняя запись (Исключен);01.01.2000\n" +
		"2001;Поздняя запись без маркера;01.01.2000\n"

	materials, err := ParseSource(core.SourceDelimitedTable, content)
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, core.ID(1087), materials[0].Id)
	assert.Equal(t, core.ID(2001), materials[1].Id)
}

func TestParseDelimitedTable_BadHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty content", ""},
		{"wrong column order", "Материал;#;Дата включения\n1;текст;дата\n"},
		{"missing columns", "#;Материал\n1;текст\n"},
		{"wrong date label", "#;Материал;Добавлен\n1;текст;дата\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource(core.SourceDelimitedTable, tt.content)
			assert.ErrorIs(t, err, ErrBadHeader)
		})
	}
}

func TestParseSource_InvalidKind(t *testing.T) {
	_, err := ParseSource(core.SourceKind(42), "содержимое")
	assert.ErrorIs(t, err, core.ErrInvalidSourceKind)
}
