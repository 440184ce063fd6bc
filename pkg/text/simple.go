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

package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SimpleReplacer implements Replacer using literal string replacement
type SimpleReplacer struct{}

var _ Replacer = (*SimpleReplacer)(nil)

// NewSimpleReplacer creates a new SimpleReplacer
func NewSimpleReplacer() *SimpleReplacer {
	return &SimpleReplacer{}
}

// ReplaceText implements Replacer.ReplaceText
func (r *SimpleReplacer) ReplaceText(ctx context.Context, content io.Reader, table Table) (*Result, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := Apply(string(raw), table)
	return &result, nil
}

// ValidateTable implements Replacer.ValidateTable
func (r *SimpleReplacer) ValidateTable(table Table) error {
	for i, rule := range table {
		if rule.From == "" {
			return errors.Errorf("rule %d: from text is required", i)
		}
	}
	return nil
}

// Apply runs every rule of the table, in order, over content.
func Apply(content string, table Table) Result {
	result := Result{
		Original: content,
		Modified: content,
	}

	current := content
	for _, rule := range table {
		// Skip empty rules
		if rule.From == "" {
			continue
		}

		next, n := replaceRule(current, rule)
		result.Replacements += n
		current = next
	}

	result.Modified = current
	result.WasModified = current != content
	return result
}

// replaceRule replaces every non-overlapping occurrence of rule.From, left to
// right. When rule.To is rule.From plus a suffix, occurrences already followed
// by that suffix are kept as they are.
func replaceRule(s string, rule Rule) (string, int) {
	suffix, extends := strings.CutPrefix(rule.To, rule.From)
	if !extends || suffix == "" {
		n := strings.Count(s, rule.From)
		if n == 0 {
			return s, 0
		}
		return strings.ReplaceAll(s, rule.From, rule.To), n
	}

	if !strings.Contains(s, rule.From) {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for {
		i := strings.Index(s, rule.From)
		if i < 0 {
			break
		}
		b.WriteString(s[:i])
		rest := s[i+len(rule.From):]
		if strings.HasPrefix(rest, suffix) {
			b.WriteString(rule.From)
		} else {
			b.WriteString(rule.To)
			n++
		}
		s = rest
	}
	b.WriteString(s)

	return b.String(), n
}
