package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		paths        []string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "suggests user config path",
			paths:        []string{"work.yaml", "/home/u/.config/go-md2html/work.yaml"},
			wantContains: []string{"--config", "or create /home/u/.config/go-md2html/work.yaml"},
		},
		{
			name:         "windows separators",
			paths:        []string{`C:\Users\u\.config\go-md2html\work.yaml`},
			wantContains: []string{`or create C:\Users\u\.config\go-md2html\work.yaml`},
		},
		{
			name:         "no user path",
			paths:        []string{"work.yaml"},
			wantContains: []string{"--config"},
			wantExcludes: []string{"or create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.paths)
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("ForConfigNotFound() = %q, want hint prefix", got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ForConfigNotFound() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ForConfigNotFound() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
	got := ForStyleNotFound([]string{"default", "minimal"})
	if !strings.Contains(got, "available: default, minimal") {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"output exists", ForOutputExists(), "--force"},
		{"output directory", ForOutputDirectory(), "writable"},
		{"highlight style", ForHighlightStyle(), "style names"},
		{"stdout batch", ForStdoutBatch(), "--stdout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") || !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint = %q, want prefix and %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("x"); got != "\n  hint: x" {
		t.Errorf("format(x) = %q", got)
	}
}
