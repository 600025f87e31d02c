package colorizer_test

import (
	"testing"

	"smudgy/internal/testsupport"
	"smudgy/stylesheet/colorizer"
)

func TestCheckBox(t *testing.T) {
	if tmp := colorizer.Checkbox(true); tmp != "[✓]" {
		t.Fatal("incorrect checkbox.", testsupport.ExpectedActual("[✓]", tmp))
	}
}
func TestRadopbox(t *testing.T) {
	if tmp := colorizer.Radiobox(true); tmp != "(✓)" {
		t.Fatal("incorrect checkbox.", testsupport.ExpectedActual("(✓)", tmp))
	}
}
