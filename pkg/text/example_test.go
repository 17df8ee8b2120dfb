package text_test

import (
	"context"
	"fmt"

	"github.com/walteh/renamerc/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	rule := text.ReplacementRule{
		FromText:       "FixedMatrix3_64F",
		ToText:         "DMatrixFixed3_F64",
		FileFilterGlob: "*.java",
	}

	result, err := replacer.ReplaceText(context.Background(), []byte("FixedMatrix3_64F a = new FixedMatrix3_64F();"), rule)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: DMatrixFixed3_F64 a = new DMatrixFixed3_F64();
	// Changes: 2
	// Was Modified: true
}

func ExampleSimpleTextReplacer_ValidateRules() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "foo", ToText: "bar", FileFilterGlob: "*.java"},
		{FromText: "baz", ToText: "qux"}, // no glob
	}

	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: glob is required
}
