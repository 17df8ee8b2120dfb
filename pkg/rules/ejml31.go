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

// Package rules holds the built-in rename table for migrating EJML sources to
// the 0.31 naming convention.
package rules

import (
	"fmt"

	"github.com/walteh/renamerc/pkg/text"
)

// JavaGlob is the file filter every built-in rule is scoped to
const JavaGlob = "*.java"

// 📐 fixed-size matrix classes exist for these dimensions, inclusive
const (
	minFixedSize = 2
	maxFixedSize = 6
)

// bitWidths are applied in this order by the suffix expansions
var bitWidths = []string{"32", "64"}

// namespacedOps are the static-method classes that gained the _R64 suffix
var namespacedOps = []string{
	"CommonOps",
	"CovarianceOps",
	"EigenOps",
	"MatrixFeatures",
	"NormOps",
	"RandomMatrices",
	"SingularOps",
	"SpecializedOps",
}

// 🏗️ builder accumulates rules in definition order
type builder struct {
	glob  string
	rules []text.ReplacementRule
}

func (b *builder) add(find, replace string) {
	b.rules = append(b.rules, text.ReplacementRule{
		FromText:       find,
		ToText:         replace,
		FileFilterGlob: b.glob,
	})
}

// suffixPair expands <base><bits>F into <target>_F<bits>
func (b *builder) suffixPair(base, target string) {
	for _, bits := range bitWidths {
		b.add(base+bits+"F", target+"_F"+bits)
	}
}

// complexPair expands <base><bits>F into <target>_C<bits>
func (b *builder) complexPair(base, target string) {
	for _, bits := range bitWidths {
		b.add(base+bits+"F", target+"_C"+bits)
	}
}

// fixedSize adds the renames for one fixed matrix dimension
func (b *builder) fixedSize(n int) {
	vec := fmt.Sprintf("%d", n)
	mat := fmt.Sprintf("%dx%d", n, n)

	b.add("FixedMatrix"+vec+"_64F", "DMatrixFixed"+vec+"_F64")
	b.add("FixedMatrix"+mat+"_64F", "DMatrixFixed"+mat+"_F64")
	b.add("FixedMatrix"+vec+"_32F", "DMatrixFixed"+vec+"_F32")
	b.add("FixedMatrix"+mat+"_32F", "DMatrixFixed"+mat+"_F32")
	b.add("FixedOps"+vec+".", "FixedOps"+vec+"_F64.")
}

// 🎯 EJML31 returns the ordered rule table for the EJML 0.31 rename.
// Order matters: later rules see the output of earlier ones.
func EJML31() []text.ReplacementRule {
	b := &builder{glob: JavaGlob}

	b.add("FixedMatrix", "DMatrixFixed")
	b.add("BlockMatrix", "DMatrixBlock")
	b.add("RowMatrix_", "DMatrixRow_")

	b.suffixPair("DenseMatrix", "DMatrixRow")
	b.suffixPair("BlockMatrix", "DMatrixBlock")
	b.suffixPair("EigenPair", "EigenPair")
	b.suffixPair("Complex", "Complex")
	b.suffixPair("ComplexPolar", "ComplexPolar")
	b.suffixPair("ComplexMath", "ComplexMath")
	b.complexPair("CDenseMatrix", "DMatrixRow")
	b.complexPair("ComplexMatrix", "Matrix")

	b.add("DenseMatrixBool", "DMatrixRow_B")

	for n := minFixedSize; n <= maxFixedSize; n++ {
		b.fixedSize(n)
	}

	b.add("_D64", "_R64")
	b.add("_D32", "_R32")
	b.add("_CD64", "_CR64")
	b.add("_CD32", "_CR32")

	for _, name := range namespacedOps {
		b.add(name+".", name+"_R64.")
	}

	return b.rules
}
