// conformance_test.go — YAML-driven end-to-end scenarios.
package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type conformanceCase struct {
	Name       string `yaml:"name"`
	Source     string `yaml:"source"`
	Input      string `yaml:"input"`
	WantOutput string `yaml:"want_output"`
	WantError  string `yaml:"want_error"`
}

type conformanceFile struct {
	Cases []conformanceCase `yaml:"cases"`
}

func loadConformance(t *testing.T) []conformanceCase {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "conformance.yaml"))
	if err != nil {
		t.Fatalf("cannot read fixture: %v", err)
	}
	var f conformanceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		t.Fatalf("cannot decode fixture: %v", err)
	}
	if len(f.Cases) == 0 {
		t.Fatalf("fixture has no cases")
	}
	return f.Cases
}

func Test_Conformance(t *testing.T) {
	for _, tc := range loadConformance(t) {
		t.Run(tc.Name, func(t *testing.T) {
			var out strings.Builder
			err := Run(tc.Source, strings.NewReader(tc.Input), &out)

			if tc.WantError != "" {
				if err == nil {
					t.Fatalf("want error containing %q, ran fine with output %q", tc.WantError, out.String())
				}
				if !strings.Contains(err.Error(), tc.WantError) {
					t.Fatalf("error %q does not contain %q", err.Error(), tc.WantError)
				}
				return
			}

			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if out.String() != tc.WantOutput {
				t.Fatalf("output:\nwant %q\ngot  %q", tc.WantOutput, out.String())
			}
		})
	}
}
