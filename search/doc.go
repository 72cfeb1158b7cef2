// Copyright 2026 Esurv
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


// Package search implements fuzzy matching of a query against candidate
// phrase lists.
//
// The Searcher type runs a fixed pipeline over each candidate:
//   - deterministic normalization of both sides
//   - suppression-rule veto of configured pattern pairs
//   - similarity scoring with a selectable whole-string or best-window ratio
//   - an inclusive score threshold
//
// Results keep the caller's phrase strings and input order; scores never
// reorder them.
package search
