// printer_test.go — canonical formatting and the print/reparse round-trip.
package core

import (
	"strings"
	"testing"
)

var roundTripSources = []struct {
	name  string
	src   string
	input string
}{
	{
		name: "straight-line arithmetic",
		src:  `program int x; begin x := 1 + 2 * 3 - (4 - 5); write x end`,
	},
	{
		name:  "read and branch",
		src:   `program int x, y; begin read x; read y; if x > y then write x else write y end`,
		input: "12 7",
	},
	{
		name:  "loop with condition connectives",
		src:   `program int i, cap; begin read i, cap; while i < cap and not i = 3 loop write i; i := i + 1 end`,
		input: "0 5",
	},
	{
		name: "nested if",
		src:  `program int a, b; begin a := 1; b := 2; if a = 1 then if b = 1 then write a else write b end`,
	},
	{
		name: "multiple declarations",
		src:  `program int a; int b, c; begin a := 1; b := a + 1; c := b * b; write a, b, c end`,
	},
}

func runProg(t *testing.T, prog *Program, input string) string {
	t.Helper()
	var out strings.Builder
	if err := prog.Execute(NewRuntime(strings.NewReader(input), &out)); err != nil {
		t.Fatalf("execution failed: %v", err)
	}
	return out.String()
}

// Printing a parsed tree and re-parsing the printed text must reconstruct a
// program with identical behavior, and a second print must be byte-identical.
func Test_Printer_RoundTrip(t *testing.T) {
	for _, tc := range roundTripSources {
		t.Run(tc.name, func(t *testing.T) {
			first := mustParse(t, tc.src)
			printed := Format(first)

			second, err := Parse(printed)
			if err != nil {
				t.Fatalf("printed form does not re-parse:\n%s\nerror: %v", printed, err)
			}
			if again := Format(second); again != printed {
				t.Fatalf("formatting is not idempotent:\nfirst:\n%s\nsecond:\n%s", printed, again)
			}

			// fresh trees on both sides: slots are mutated by execution
			want := runProg(t, mustParse(t, tc.src), tc.input)
			got := runProg(t, mustParse(t, printed), tc.input)
			if want != got {
				t.Fatalf("behavior changed across round-trip:\nwant %q\ngot  %q", want, got)
			}
		})
	}
}

// Comparisons print in source syntax so the printed tree stays parseable.
func Test_Printer_ComparisonOperators(t *testing.T) {
	src := `program int x; begin x := 1; if x = 1 then write x end`
	out, err := Pretty(src)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	if !strings.Contains(out, "x = 1") || strings.Contains(out, "==") {
		t.Fatalf("comparison not printed in source syntax:\n%s", out)
	}
}

func Test_Printer_IndentsNestedBlocks(t *testing.T) {
	src := `program int i; begin i := 0; while i < 2 loop if i = 0 then write i; i := i + 1 end`
	out, err := Pretty(src)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	if !strings.Contains(out, "  while i < 2 loop\n    if i = 0 then\n      write i") {
		t.Fatalf("nested indentation wrong:\n%s", out)
	}
}

func Test_Pretty_SurfacesParseErrors(t *testing.T) {
	_, err := Pretty(`program int x; begin x = 1 end`)
	if err == nil || !strings.Contains(err.Error(), "PARSE ERROR") {
		t.Fatalf("want wrapped parse error, got %v", err)
	}
}
