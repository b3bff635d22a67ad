// Package synth turns a case fragment into a complete translation unit.
package synth

import "fmt"

// unitTemplate is the fixed scaffolding around a case fragment. Everything
// outside the fragment is well-formed, so a compile failure is attributable
// only to the fragment itself.
const unitTemplate = `
#include "%s"

using namespace safearray;

int main() {
    %s
    return 0;
}
`

// Synthesize embeds a case fragment verbatim into the fixed scaffolding:
// an include of the header under test, a using-directive bringing its names
// into unqualified scope, and an int main() wrapper returning 0.
// Pure text transformation, no side effects.
func Synthesize(fragment, headerPath string) string {
	return fmt.Sprintf(unitTemplate, headerPath, fragment)
}
