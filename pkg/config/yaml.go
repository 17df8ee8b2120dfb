package config

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// 📝 Parse parses a rule file from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*RuleFile, error) {
	var f RuleFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &f, nil
}

// 📤 WriteYAML writes rules as a YAML rule file.
// A glob shared by every rule is written once at the top.
func WriteYAML(w io.Writer, rules []text.ReplacementRule) error {
	f := RuleFile{Rules: make([]text.ReplacementRule, len(rules))}
	copy(f.Rules, rules)

	if glob, ok := sharedGlob(rules); ok {
		f.Glob = glob
		for i := range f.Rules {
			f.Rules[i].FileFilterGlob = ""
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&f); err != nil {
		return errors.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return errors.Errorf("flushing YAML: %w", err)
	}
	return nil
}

func sharedGlob(rules []text.ReplacementRule) (string, bool) {
	if len(rules) == 0 {
		return "", false
	}
	glob := rules[0].FileFilterGlob
	for _, r := range rules[1:] {
		if r.FileFilterGlob != glob {
			return "", false
		}
	}
	return glob, true
}
