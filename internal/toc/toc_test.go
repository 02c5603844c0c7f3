package toc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2html/internal/render"
)

// headingsAt builds one heading per level, labelled h0, h1, ...
func headingsAt(levels ...int) []render.HeadingRecord {
	out := make([]render.HeadingRecord, len(levels))
	for i, l := range levels {
		out[i] = render.HeadingRecord{Level: l, ID: "id" + string(rune('a'+i)), Text: "h" + string(rune('0'+i))}
	}
	return out
}

// entryDepths returns the list depth of every entry, the outer list being 1.
func entryDepths(t *testing.T, toc string) []int {
	t.Helper()

	var depths []int
	depth := 0
	for _, line := range strings.Split(toc, "\n") {
		switch {
		case line == "<ul>":
			depth++
		case line == "</ul>":
			depth--
		case strings.HasPrefix(line, "<li>"):
			depths = append(depths, depth)
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced lists in %q", toc)
	}
	return depths
}

// ---------------------------------------------------------------------------
// TestBuild - Stepwise nesting (default)
// ---------------------------------------------------------------------------

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("empty headings yield an empty outer list", func(t *testing.T) {
		t.Parallel()

		want := "<nav>\n<h2>Table of Contents</h2>\n<ul>\n</ul>\n</nav>\n"
		if got := Build(nil); got != want {
			t.Errorf("Build(nil) = %q, want %q", got, want)
		}
	})

	t.Run("exact output for 1 2 1 3", func(t *testing.T) {
		t.Parallel()

		want := "<nav>\n<h2>Table of Contents</h2>\n<ul>\n" +
			"<li><a href=\"#ida\">h0</a></li>\n" +
			"<ul>\n<li><a href=\"#idb\">h1</a></li>\n" +
			"</ul>\n<li><a href=\"#idc\">h2</a></li>\n" +
			"<ul>\n<ul>\n<li><a href=\"#idd\">h3</a></li>\n" +
			"</ul>\n</ul>\n" +
			"</ul>\n</nav>\n"
		if got := Build(headingsAt(1, 2, 1, 3)); got != want {
			t.Errorf("Build() =\n%s\nwant\n%s", got, want)
		}
	})

	tests := []struct {
		name   string
		levels []int
		want   []int
	}{
		{"two top-level entries and a deep third level", []int{1, 2, 1, 3}, []int{1, 2, 1, 3}},
		{"jump from 1 to 4 opens three lists", []int{1, 4}, []int{1, 4}},
		{"starting below level 1", []int{3, 2}, []int{3, 2}},
		{"levels above 6 clamp", []int{1, 9}, []int{1, 6}},
		{"levels below 1 clamp", []int{0, -3}, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entryDepths(t, Build(headingsAt(tt.levels...)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("depths mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("jump from 1 to 4 writes three opens before the entry", func(t *testing.T) {
		t.Parallel()

		got := Build(headingsAt(1, 4))
		if !strings.Contains(got, "</a></li>\n<ul>\n<ul>\n<ul>\n<li><a href=\"#idb\">") {
			t.Errorf("Build() = %q, want three nested opens before level-4 entry", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuild_Collapsed - Corrected nesting
// ---------------------------------------------------------------------------

func TestBuild_Collapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		levels []int
		want   []int
	}{
		{"jump from 1 to 4 opens one list", []int{1, 4}, []int{1, 2}},
		{"siblings after a jump stay together", []int{1, 3, 3, 2, 1}, []int{1, 2, 2, 2, 1}},
		{"regular outline unchanged", []int{1, 2, 3, 2, 1}, []int{1, 2, 3, 2, 1}},
		{"starting deep", []int{4, 5, 2}, []int{2, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entryDepths(t, Build(headingsAt(tt.levels...), WithNesting(Collapsed)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("depths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuild_Options - Title, depth filter, escaping
// ---------------------------------------------------------------------------

func TestBuild_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom title is escaped", func(t *testing.T) {
		t.Parallel()

		got := Build(nil, WithTitle("Q&A"))
		if !strings.Contains(got, "<h2>Q&amp;A</h2>") {
			t.Errorf("Build() = %q", got)
		}
	})

	t.Run("empty title keeps default", func(t *testing.T) {
		t.Parallel()

		if got := Build(nil, WithTitle("")); !strings.Contains(got, "<h2>"+DefaultTitle+"</h2>") {
			t.Errorf("Build() = %q", got)
		}
	})

	t.Run("depth filter skips headings", func(t *testing.T) {
		t.Parallel()

		got := Build(headingsAt(1, 2, 3, 4), WithDepth(2, 3))
		for _, absent := range []string{">h0<", ">h3<"} {
			if strings.Contains(got, absent) {
				t.Errorf("Build() = %q, should not contain %q", got, absent)
			}
		}
		if diff := cmp.Diff([]int{2, 3}, entryDepths(t, got)); diff != "" {
			t.Errorf("depths mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("label escaped exactly once", func(t *testing.T) {
		t.Parallel()

		got := Build([]render.HeadingRecord{{Level: 1, ID: "x", Text: "a < b & c"}})
		if !strings.Contains(got, ">a &lt; b &amp; c</a>") {
			t.Errorf("Build() = %q", got)
		}
	})

	t.Run("anchor id escaping", func(t *testing.T) {
		t.Parallel()

		h := []render.HeadingRecord{{Level: 1, ID: `a"b`, Text: "t"}}
		if got := Build(h); !strings.Contains(got, `href="#a"b"`) {
			t.Errorf("Build() = %q, want verbatim id", got)
		}
		if got := Build(h, WithAttributeEscaping(true)); !strings.Contains(got, `href="#a&#34;b"`) {
			t.Errorf("Build() = %q, want escaped id", got)
		}
	})
}

func TestNesting_String(t *testing.T) {
	t.Parallel()

	if Stepwise.String() != "stepwise" || Collapsed.String() != "collapsed" {
		t.Errorf("String() = %q, %q", Stepwise.String(), Collapsed.String())
	}
}
