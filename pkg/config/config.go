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

package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for rule file parsers
type Parser interface {
	// 📝 Parse parses a rule file from bytes
	Parse(ctx context.Context, data []byte) (*RuleFile, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 RuleFile is the on-disk shape of a rule table
type RuleFile struct {
	Glob  string                 `json:"glob,omitempty" yaml:"glob,omitempty"` // Default glob for rules without one
	Rules []text.ReplacementRule `json:"rules" yaml:"rules"`                   // Applied in order
}

// 🔧 Resolve fills in default globs and validates the rules
func (f *RuleFile) Resolve() ([]text.ReplacementRule, error) {
	glob := f.Glob
	if glob == "" {
		glob = rules.JavaGlob
	}

	out := make([]text.ReplacementRule, len(f.Rules))
	for i, r := range f.Rules {
		if r.FileFilterGlob == "" {
			r.FileFilterGlob = glob
		}
		out[i] = r
	}

	if err := text.NewSimpleTextReplacer().ValidateRules(out); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return out, nil
}

// 🎯 Load reads a rule file and returns its resolved rules
func Load(ctx context.Context, path string) ([]text.ReplacementRule, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rule file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rule file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	f, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing rule file: %w", err)
	}

	out, err := f.Resolve()
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Int("rules", len(out)).Msg("loaded rule file")
	return out, nil
}
