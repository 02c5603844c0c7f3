package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	Inner struct {
		On bool `yaml:"on"`
	} `yaml:"inner"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		anyErr  bool
	}{
		{name: "valid", data: []byte("name: a\ncount: 2\ninner:\n  on: true\n"), dest: &sample{}},
		{name: "nil data", data: nil, dest: &sample{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &sample{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: a"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{name: "unknown field", data: []byte("name: a\nextra: 1\n"), dest: &sample{}, anyErr: true},
		{name: "unknown nested field", data: []byte("inner:\n  off: true\n"), dest: &sample{}, anyErr: true},
		{name: "type mismatch", data: []byte("count: many\n"), dest: &sample{}, anyErr: true},
		{name: "invalid syntax", data: []byte("name: [unclosed\n"), dest: &sample{}, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("UnmarshalStrict() error = nil, want error")
				}
			default:
				if err != nil {
					t.Errorf("UnmarshalStrict() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestUnmarshalStrict_Values(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.UnmarshalStrict([]byte("name: doc\ncount: 3\ninner:\n  on: true\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Name != "doc" || s.Count != 3 || !s.Inner.On {
		t.Errorf("decoded = %+v", s)
	}
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	if err := yamlutil.UnmarshalStrict(data, &sample{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(sample{Name: "doc", Count: 1})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "name: doc") {
		t.Errorf("Marshal() = %q, want name field", out)
	}
}
