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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/status"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📊 Result holds the counts for one applied rule
type Result struct {
	Changed  int // files rewritten
	Examined int // files matching the glob
}

// 👀 Observer is notified as a run progresses
type Observer interface {
	Started(ctx context.Context, root string)
	RuleApplied(ctx context.Context, rule text.ReplacementRule, result Result)
	Finished(ctx context.Context)
}

// 🔧 Options contains the collaborators of a Renamer
type Options struct {
	// Files gives access to the tree being migrated
	Files status.FileManager
	// Replacer applies a single rule to file content
	Replacer text.TextReplacer
}

// 🎮 Renamer applies replacement rules to the files of one tree
type Renamer struct {
	files    status.FileManager
	replacer text.TextReplacer
}

// 🏭 New creates a renamer with the given options
func New(opts Options) (*Renamer, error) {
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}
	return &Renamer{
		files:    opts.Files,
		replacer: opts.Replacer,
	}, nil
}

// 🔄 ApplyRule replaces rule.FromText with rule.ToText in every file matching
// rule.FileFilterGlob and rewrites the files that changed.
//
// Files rewritten before an error are left rewritten.
func (r *Renamer) ApplyRule(ctx context.Context, rule text.ReplacementRule) (Result, error) {
	var res Result
	logger := zerolog.Ctx(ctx).With().Str("find", rule.FromText).Str("replace", rule.ToText).Logger()

	files, err := r.files.ListFiles(ctx, rule.FileFilterGlob)
	if err != nil {
		return res, errors.Errorf("rule %s: listing files: %w", rule, err)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return res, errors.Errorf("rule %s: %w", rule, err)
		}

		content, err := r.files.ReadFile(ctx, file)
		if err != nil {
			return res, errors.Errorf("rule %s: file %s: %w", rule, file, err)
		}
		res.Examined++

		replaced, err := r.replacer.ReplaceText(ctx, content, rule)
		if err != nil {
			return res, errors.Errorf("rule %s: file %s: %w", rule, file, err)
		}
		if !replaced.WasModified {
			continue
		}

		if err := r.files.WriteFileAtomic(ctx, file, replaced.ModifiedContent); err != nil {
			return res, errors.Errorf("rule %s: file %s: %w", rule, file, err)
		}
		res.Changed++

		logger.Debug().Str("file", file).Int("replacements", replaced.ReplacementCount).Msg("file changed")
	}

	return res, nil
}
