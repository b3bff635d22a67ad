package synth

import (
	"strings"
	"testing"
)

func TestSynthesize(t *testing.T) {
	fragment := "Array<int, 4> a;\n    a.at<4>();"
	unit := Synthesize(fragment, "/lib/array.h")

	t.Run("includes the header at the given path", func(t *testing.T) {
		if !strings.Contains(unit, `#include "/lib/array.h"`) {
			t.Errorf("unit does not include header:\n%s", unit)
		}
	})

	t.Run("brings the library namespace into scope", func(t *testing.T) {
		if !strings.Contains(unit, "using namespace safearray;") {
			t.Errorf("unit missing using-directive:\n%s", unit)
		}
	})

	t.Run("embeds the fragment verbatim", func(t *testing.T) {
		if !strings.Contains(unit, fragment) {
			t.Errorf("unit does not contain fragment verbatim:\n%s", unit)
		}
	})

	t.Run("wraps the fragment in an entry function", func(t *testing.T) {
		if !strings.Contains(unit, "int main() {") {
			t.Errorf("unit missing entry function:\n%s", unit)
		}
		if !strings.Contains(unit, "return 0;") {
			t.Errorf("unit missing success return:\n%s", unit)
		}
		if strings.Index(unit, "int main() {") > strings.Index(unit, fragment) {
			t.Error("fragment appears before the entry function")
		}
	})

	t.Run("pure transformation", func(t *testing.T) {
		again := Synthesize(fragment, "/lib/array.h")
		if unit != again {
			t.Error("synthesize is not deterministic")
		}
	})
}
