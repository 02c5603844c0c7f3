package pipeline

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "script removed",
			input:        `<p>a</p><script>alert(1)</script>`,
			wantContains: []string{"<p>a</p>"},
			wantExcludes: []string{"<script", "alert(1)"},
		},
		{
			name:         "javascript URL dropped",
			input:        `<a href="javascript:alert(1)">x</a>`,
			wantExcludes: []string{"javascript:"},
		},
		{
			name:         "event handler dropped",
			input:        `<img src="a.png" alt="a" onerror="alert(1)">`,
			wantContains: []string{`src="a.png"`},
			wantExcludes: []string{"onerror"},
		},
		{
			name:         "heading and paragraph classes kept",
			input:        `<h2 class="title">T</h2><p class="body">x</p>`,
			wantContains: []string{`<h2 class="title">`, `<p class="body">`},
		},
		{
			name:         "code language class kept",
			input:        `<pre><code class="language-go">x</code></pre>`,
			wantContains: []string{`class="language-go"`},
		},
		{
			name:         "ordered list start kept",
			input:        `<ol start="3"><li>a</li></ol>`,
			wantContains: []string{`start="3"`},
		},
		{
			name:         "image title kept",
			input:        `<img src="a.png" alt="A" title="A">`,
			wantContains: []string{`title="A"`},
		},
		{
			name:         "navigation and marks kept",
			input:        `<nav><h2>Table of Contents</h2><ul><li><a href="#x">x</a></li></ul></nav><p><mark>m</mark> <s>s</s></p>`,
			wantContains: []string{"<nav>", `href="#x"`, "<mark>m</mark>", "<s>s</s>"},
		},
		{
			name:         "table markup kept",
			input:        `<table><thead><tr><th>a</th></tr></thead><tr><td>1</td></tr></table>`,
			wantContains: []string{"<table>", "<th>a</th>", "<td>1</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sanitize(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Sanitize() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}
