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


// Package search provides typo- and word-order-tolerant search over the
// material collection.
//
// The Searcher type scans every stored material per query and combines:
//   - Literal matching against each material's inverted word index
//   - Morphological form expansion for single-word queries (suffix heuristic)
//   - Edit-distance fallback for single-word queries (bounded Levenshtein)
//   - Sentence-level proximity scoring with an exact-phrase short-circuit
//
// Results are thresholded per record and ranked by similarity descending.
package search
