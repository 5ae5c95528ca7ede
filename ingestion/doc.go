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


// Package ingestion turns raw registry dumps into indexed materials.
//
// Two source shapes are supported: a structured-text dump split on a section
// delimiter phrase, and a semicolon-delimited table with a fixed header row.
// Accepted rows become materials with derived word indexes; the store is then
// rebuilt as a whole: cleared and repopulated in bounded chunks. A content
// hash of the raw source detects no-op updates.
package ingestion
