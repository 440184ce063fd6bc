// Copyright 2025 walteh LLC
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

// Package text applies ordered literal replacement rules to text content.
package text

import (
	"context"
	"io"
)

// Rule defines a single literal replacement
type Rule struct {
	// From is the exact, case-sensitive text to replace
	From string

	// To is the replacement text
	To string
}

// Table is an ordered list of rules. Each rule sees the content produced by
// the rules before it.
type Table []Rule

// Result contains the outcome of applying a table to some content
type Result struct {
	// WasModified indicates if the content changed
	WasModified bool

	// Replacements is the number of substitutions made across all rules
	Replacements int

	// Original is the content before replacements
	Original string

	// Modified is the content after replacements
	Modified string
}

// Replacer defines the interface for text replacement operations
type Replacer interface {
	// ReplaceText applies the table to everything read from content
	ReplaceText(ctx context.Context, content io.Reader, table Table) (*Result, error)

	// ValidateTable checks that every rule is usable
	ValidateTable(table Table) error
}
