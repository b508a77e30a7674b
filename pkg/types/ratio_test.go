// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/kinnison/harvey/pkg/diag"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    Ratio
		wantErr bool
	}{
		{"16:9", Ratio{16, 9}, false},
		{"4:3", Ratio{4, 3}, false},
		{"1:1", Ratio{1, 1}, false},
		{"0:9", Ratio{}, true},
		{"16:0", Ratio{}, true},
		{"-16:9", Ratio{}, true},
		{"16x9", Ratio{}, true},
		{"16:9:2", Ratio{}, true},
		{"", Ratio{}, true},
		{"wide", Ratio{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRatio(tt.in)
			if tt.wantErr {
				if diag.CodeOf(err) != diag.CodeInvalidRatio {
					t.Fatalf("error = %v, want invalid-ratio", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRatio(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRatio(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRatioYAML(t *testing.T) {
	var r Ratio
	if err := yaml.Unmarshal([]byte(`"16:9"`), &r); err != nil {
		t.Fatal(err)
	}
	if r != (Ratio{16, 9}) {
		t.Fatalf("decoded %v", r)
	}

	out, err := yaml.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "16:9\n" {
		t.Errorf("marshaled %q", out)
	}
}

func TestMetaConfigValidate(t *testing.T) {
	m := DefaultMeta()
	if err := m.Validate(); err != nil {
		t.Fatalf("default meta must validate, got %v", err)
	}

	m.Inherit = []string{"template"}
	if diag.CodeOf(m.Validate()) != diag.CodeMetaInvariant {
		t.Error("dropping meta from inherit must violate the invariant")
	}

	m = DefaultMeta()
	m.Deny = []string{"meta"}
	if diag.CodeOf(m.Validate()) != diag.CodeMetaInvariant {
		t.Error("denying meta must violate the invariant")
	}
}

func TestMetaConfigCloneIsDeep(t *testing.T) {
	m := DefaultMeta()
	c := m.Clone()
	c.Inherit[0] = "changed"
	if m.Inherit[0] != "meta" {
		t.Error("Clone must not share the inherit slice")
	}
}
