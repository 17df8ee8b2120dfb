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
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/walteh/renamerc/pkg/text"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".hcl")
}

// 📝 Parse parses a rule file from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*RuleFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "rules.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_glob": cty.StringVal(rules.JavaGlob),
		},
	}

	// Define HCL schema
	type hclRuleFile struct {
		Glob  string `hcl:"glob,optional"`
		Rules []struct {
			Find    string `hcl:"find"`
			Replace string `hcl:"replace"`
			Glob    string `hcl:"glob,optional"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclRuleFile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	f := &RuleFile{Glob: hclCfg.Glob}
	for _, r := range hclCfg.Rules {
		f.Rules = append(f.Rules, text.ReplacementRule{
			FromText:       r.Find,
			ToText:         r.Replace,
			FileFilterGlob: r.Glob,
		})
	}

	return f, nil
}
