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


package core

import "errors"

// Configuration errors
var (
	// ErrInvalidRulePattern indicates a suppression-rule pattern failed to
	// compile as a regular expression.
	ErrInvalidRulePattern = errors.New("invalid suppression rule pattern")

	// ErrEmptyAbbreviation indicates an abbreviation entry with an empty
	// short form.
	ErrEmptyAbbreviation = errors.New("abbreviation short form cannot be empty")

	// ErrInvalidRewritePattern indicates a rewrite pattern failed to
	// compile as a regular expression.
	ErrInvalidRewritePattern = errors.New("invalid rewrite pattern")

	// ErrUnknownAlgorithm indicates an unrecognized scorer backend name.
	ErrUnknownAlgorithm = errors.New("unknown scoring algorithm")
)
