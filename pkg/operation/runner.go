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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/status"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run applies rules in order to the tree at root, reporting to observer.
// Every rule runs whether or not earlier rules changed anything; only an
// I/O error stops the run early.
func Run(ctx context.Context, root string, rules []text.ReplacementRule, observer Observer) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return errors.Errorf("getting absolute root path: %w", err)
	}

	renamer, err := New(Options{Files: status.New(absRoot)})
	if err != nil {
		return errors.Errorf("creating renamer: %w", err)
	}

	return renamer.Run(ctx, rules, observer)
}

// 🏃 Run applies rules in order to the renamer's tree
func (r *Renamer) Run(ctx context.Context, rules []text.ReplacementRule, observer Observer) error {
	if observer == nil {
		observer = nopObserver{}
	}

	if err := r.replacer.ValidateRules(rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	root := r.root()

	logger.Debug().Str("root", root).Int("rules", len(rules)).Msg("starting run")
	observer.Started(ctx, root)

	for i, rule := range rules {
		res, err := r.ApplyRule(ctx, rule)
		if err != nil {
			return errors.Errorf("applying rule %d: %w", i, err)
		}
		observer.RuleApplied(ctx, rule, res)
	}

	observer.Finished(ctx)
	logger.Debug().Str("root", root).Msg("run complete")
	return nil
}

// root returns the base directory when the file manager exposes one
func (r *Renamer) root() string {
	if b, ok := r.files.(interface{ BaseDir() string }); ok {
		return b.BaseDir()
	}
	return ""
}

type nopObserver struct{}

func (nopObserver) Started(context.Context, string) {}
func (nopObserver) RuleApplied(context.Context, text.ReplacementRule, Result) {}
func (nopObserver) Finished(context.Context) {}
