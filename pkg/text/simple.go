package text

import (
	"bytes"
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using plain substring replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText.
// Occurrences are replaced left to right without overlap.
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content []byte, rule ReplacementRule) (*ReplacementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	// an empty pattern would match between every byte
	if rule.FromText == "" {
		return result, nil
	}

	from := []byte(rule.FromText)
	count := bytes.Count(content, from)
	if count == 0 {
		return result, nil
	}

	modified := bytes.ReplaceAll(content, from, []byte(rule.ToText))

	result.ReplacementCount = count
	result.ModifiedContent = modified
	result.WasModified = !bytes.Equal(content, modified)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: find is required", i)
		}
		if rule.FileFilterGlob == "" {
			return errors.Errorf("rule %d: glob is required", i)
		}
		if !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
