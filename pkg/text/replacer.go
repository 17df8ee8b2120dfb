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
	"fmt"
)

// ReplacementRule defines a single text replacement operation
type ReplacementRule struct {
	// FromText is the literal text to replace
	FromText string `json:"find" yaml:"find"`

	// ToText is the replacement text
	ToText string `json:"replace" yaml:"replace"`

	// FileFilterGlob is matched against file base names to select the files a rule applies to
	FileFilterGlob string `json:"glob,omitempty" yaml:"glob,omitempty"`
}

// String returns the rule in "find -> replace" form
func (r ReplacementRule) String() string {
	return fmt.Sprintf("%s -> %s", r.FromText, r.ToText)
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of occurrences replaced
	ReplacementCount int

	// OriginalContent is the content before replacement
	OriginalContent []byte

	// ModifiedContent is the content after replacement
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies one rule to the content.
	// Matching is literal, never a regular expression.
	ReplaceText(ctx context.Context, content []byte, rule ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
