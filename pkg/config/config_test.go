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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/walteh/renamerc/pkg/text"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		want        []text.ReplacementRule
		errContains string
	}{
		{
			name:     "yaml_default_glob",
			filename: "rules.yaml",
			content: `
rules:
  - find: CommonOps.
    replace: CommonOps_R64.
  - find: DenseMatrix64F
    replace: DMatrixRow_F64
    glob: "*.kt"
`,
			want: []text.ReplacementRule{
				{FromText: "CommonOps.", ToText: "CommonOps_R64.", FileFilterGlob: "*.java"},
				{FromText: "DenseMatrix64F", ToText: "DMatrixRow_F64", FileFilterGlob: "*.kt"},
			},
		},
		{
			name:     "yml_top_level_glob",
			filename: "rules.yml",
			content: `
glob: "*.scala"
rules:
  - find: a
    replace: b
`,
			want: []text.ReplacementRule{
				{FromText: "a", ToText: "b", FileFilterGlob: "*.scala"},
			},
		},
		{
			name:     "yaml_unknown_field",
			filename: "rules.yaml",
			content: `
rules:
  - find: a
    replace: b
    regex: true
`,
			errContains: "parsing YAML",
		},
		{
			name:     "yaml_missing_find",
			filename: "rules.yaml",
			content: `
rules:
  - replace: b
`,
			errContains: "rule 0: find is required",
		},
		{
			name:     "json",
			filename: "rules.json",
			content:  `{"glob": "*.java", "rules": [{"find": "_D64", "replace": "_R64"}, {"find": "x", "replace": "y", "glob": "*.txt"}]}`,
			want: []text.ReplacementRule{
				{FromText: "_D64", ToText: "_R64", FileFilterGlob: "*.java"},
				{FromText: "x", ToText: "y", FileFilterGlob: "*.txt"},
			},
		},
		{
			name:        "json_unknown_field",
			filename:    "rules.json",
			content:     `{"rules": [], "extra": 1}`,
			errContains: "parsing JSON",
		},
		{
			name:     "hcl",
			filename: "rules.hcl",
			content: `
glob = default_glob

rule {
  find    = "FixedOps3."
  replace = "FixedOps3_F64."
}

rule {
  find    = "Complex64F"
  replace = "Complex_F64"
  glob    = "*.groovy"
}
`,
			want: []text.ReplacementRule{
				{FromText: "FixedOps3.", ToText: "FixedOps3_F64.", FileFilterGlob: "*.java"},
				{FromText: "Complex64F", ToText: "Complex_F64", FileFilterGlob: "*.groovy"},
			},
		},
		{
			name:     "hcl_missing_replace",
			filename: "rules.hcl",
			content: `
rule {
  find = "a"
}
`,
			errContains: "decoding HCL",
		},
		{
			name:        "hcl_syntax_error",
			filename:    "rules.hcl",
			content:     `rule {`,
			errContains: "parsing HCL",
		},
		{
			name:     "invalid_glob",
			filename: "rules.yaml",
			content: `
glob: "[*.java"
rules:
  - find: a
    replace: b
`,
			errContains: "invalid glob",
		},
		{
			name:        "unsupported_extension",
			filename:    "rules.toml",
			content:     `x = 1`,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644), "writing rule file should succeed")

			got, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading rule file")
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteYAML(buf, rules.EJML31()))

	assert.Equal(t, 1, strings.Count(buf.String(), "*.java"), "shared glob should be hoisted")

	path := filepath.Join(t.TempDir(), "ejml31.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, rules.EJML31(), got)
}

func TestWriteYAML_MixedGlobs(t *testing.T) {
	in := []text.ReplacementRule{
		{FromText: "a", ToText: "b", FileFilterGlob: "*.java"},
		{FromText: "c", ToText: "", FileFilterGlob: "*.kt"},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteYAML(buf, in))

	path := filepath.Join(t.TempDir(), "mixed.yml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a/b/rules.YAML"))
	assert.IsType(t, &YAMLParser{}, GetParser("rules.yml"))
	assert.IsType(t, &JSONParser{}, GetParser("rules.json"))
	assert.IsType(t, &HCLParser{}, GetParser("rules.hcl"))
	assert.Nil(t, GetParser("rules.txt"))
}
