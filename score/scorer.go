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


// Package score defines the similarity capability used by the searcher and
// its backends. Scores are integers in [0,100] over already-normalized
// strings.
package score

// Scorer computes similarity scores between two normalized strings.
//
// Every backend follows the same empty-string convention: two empty strings
// score 100, an empty string against a non-empty one scores 0.
type Scorer interface {
	// Ratio scores the two complete strings against each other, penalizing
	// length and ordering differences across their entirety. Identical
	// strings score 100.
	Ratio(a, b string) int

	// PartialRatio scores the shorter string against its best-matching
	// contiguous window inside the longer. A string fully contained in the
	// other scores 100.
	PartialRatio(a, b string) int
}

// emptyScore pins the empty-string convention for every backend. The second
// return value is only meaningful when the first is true.
func emptyScore(a, b string) (bool, int) {
	switch {
	case a == "" && b == "":
		return true, 100
	case a == "" || b == "":
		return true, 0
	}
	return false, 0
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
