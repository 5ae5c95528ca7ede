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
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/berkut/core"
)

const (
	// sectionDelimiter separates entries in a structured-text dump.
	sectionDelimiter = "Экстремистский материал №"

	// exclusionMarker flags entries withdrawn from the registry.
	exclusionMarker = "Исключен"

	// legacyExclusionThreshold is the id below which delimited-table rows keep
	// the exclusion marker. Historical rows were republished with the marker
	// inline in the text; only rows at or above this id are actually dropped.
	legacyExclusionThreshold = 1088

	// textUnspecified fills an empty material cell in a delimited table.
	textUnspecified = "Не указано"
)

var (
	sectionPattern      = regexp.MustCompile(`(?s)^(\d+): (.+)`)
	decisionDatePattern = regexp.MustCompile(`\(решение .+? от ([0-9.]+)\)`)
	digitsOnly          = regexp.MustCompile(`^\d+$`)
)

// ParseSource parses raw content into materials according to the source kind.
// Word indexes are not built here; the pipeline derives them before storing.
func ParseSource(kind core.SourceKind, content string) ([]*core.Material, error) {
	if err := core.ValidateSourceKind(kind); err != nil {
		return nil, err
	}

	switch kind {
	case core.SourceStructuredText:
		return parseStructuredText(content), nil
	default:
		return parseDelimitedTable(content)
	}
}

// parseStructuredText splits a plain-text dump on the section delimiter
// phrase. Each section must open with "<id>: " followed by the body; bodies
// carrying the exclusion marker are dropped. A trailing decision-date
// parenthetical is extracted when present.
func parseStructuredText(content string) []*core.Material {
	sections := strings.Split(content, sectionDelimiter)
	if len(sections) > 0 {
		sections = sections[1:]
	}

	var materials []*core.Material
	for _, section := range sections {
		match := sectionPattern.FindStringSubmatch(section)
		if match == nil {
			continue
		}

		id, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			continue
		}

		text := strings.TrimSpace(match[2])
		if strings.Contains(text, exclusionMarker) {
			continue
		}

		date := core.DateUnspecified
		if dateMatch := decisionDatePattern.FindStringSubmatch(section); dateMatch != nil {
			date = dateMatch[1]
		}

		materials = append(materials, &core.Material{
			Id:   core.ID(id),
			Date: date,
			Text: text,
		})
	}
	return materials
}

// parseDelimitedTable parses semicolon-delimited rows. The header row must
// carry exactly the expected column labels or the whole import fails. Rows
// with the exclusion marker are dropped only at or above the legacy id
// threshold; earlier rows keep it (intentional asymmetry, preserved as-is).
func parseDelimitedTable(content string) ([]*core.Material, error) {
	lines := strings.Split(content, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := strings.Split(line, ";")
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, ErrBadHeader
	}
	header := rows[0]
	if len(header) < 3 || header[0] != "#" || header[1] != "Материал" ||
		!strings.HasPrefix(header[2], "Дата включения") {
		return nil, ErrBadHeader
	}

	var materials []*core.Material
	for _, row := range rows[1:] {
		if len(row) < 3 || !digitsOnly.MatchString(row[0]) {
			continue
		}

		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			continue
		}

		text := row[1]
		if text == "" {
			text = textUnspecified
		}
		if strings.Contains(text, exclusionMarker) && id >= legacyExclusionThreshold {
			continue
		}

		date := row[2]
		if date == "" {
			date = core.DateUnspecified
		}

		materials = append(materials, &core.Material{
			Id:   core.ID(id),
			Date: date,
			Text: text,
		})
	}
	return materials, nil
}
