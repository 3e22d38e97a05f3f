package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func flagNamed(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolve(t *testing.T) {
	r, err := resolve(strings.NewReader(`
log-level: debug
log_format: json
indent: 2
aggregate: true
domain: example.net
nested:
  key: value
list: [a, b]
empty:
`))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "json"},
		{"indent", "2"},
		{"aggregate", "true"},
		{"domain", "example.net"},
		{"nested", nil},
		{"list", nil},
		{"empty", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, flagNamed(tt.flag))
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolveEmptyOrInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"empty":    "",
		"sequence": "- a\n- b\n",
		"broken":   "key: [unterminated\n",
	} {
		t.Run(name, func(t *testing.T) {
			r, err := resolve(strings.NewReader(content))
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			got, err := r.Resolve(nil, nil, flagNamed("domain"))
			if err != nil || got != nil {
				t.Errorf("Resolve() = (%v, %v), want (nil, nil)", got, err)
			}

			if err := r.Validate(nil); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
