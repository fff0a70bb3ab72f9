package extract_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"eplotdb/internal/extract"
)

func TestSplitFilename(t *testing.T) {
	cases := []struct {
		name       string
		wantSeries string
		wantEp     string
	}{
		{"Show A_01_x.md", "Show A", "01"},
		{"Show A_02.md", "Show A", "02"},
		{"Show_3.5_part_two.md", "Show", "3.5"},
		{"Show__x.md", "Show", ""},
		{"standalone.md", "standalone.md", ""},
		{"_lead.md", "", "lead"},
		{"Show_01.md.md", "Show", "01.md"},
	}
	for _, tc := range cases {
		series, ep := extract.SplitFilename(tc.name)
		if series != tc.wantSeries || ep != tc.wantEp {
			t.Fatalf("SplitFilename(%q) = (%q, %q), want (%q, %q)", tc.name, series, ep, tc.wantSeries, tc.wantEp)
		}
	}
}

func TestCleanSeriesName(t *testing.T) {
	cases := map[string]string{
		"Foo Bar 12":    "Foo Bar",
		"Foo Bar 12.5":  "Foo Bar",
		"Foo Bar Two":   "Foo Bar Two",
		"Foo Bar":       "Foo Bar",
		"Foo":           "Foo",
		"12":            "12",
		"Foo Bar v2":    "Foo Bar v2",
		"Foo  Bar  3":   "Foo  Bar",
		"Season 1 Ep 4": "Season 1 Ep",
		"Foo 1-2":       "Foo 1-2",
	}
	for input, want := range cases {
		if got := extract.CleanSeriesName(input); got != want {
			t.Fatalf("CleanSeriesName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	content := "---\ntitle: \"Show A 2\"\nother: \"x\"\n---\n"
	title, ok := extract.ExtractTitle(content)
	if !ok || title != "Show A 2" {
		t.Fatalf("ExtractTitle = (%q, %v)", title, ok)
	}
	if _, ok := extract.ExtractTitle("title: 'single quoted'"); ok {
		t.Fatal("expected single-quoted title to be ignored")
	}
	if title, ok := extract.ExtractTitle(`title:""`); !ok || title != "" {
		t.Fatalf("expected empty quoted title to match, got (%q, %v)", title, ok)
	}
}

func TestExtractTagsYYYYMM(t *testing.T) {
	cases := []struct {
		name      string
		content   string
		wantYear  string
		wantMonth string
	}{
		{"middle tag", "tags: [tech, 202403, news]", "2024", "03"},
		{"first of two", "tags: [202401, 202502]", "2024", "01"},
		{"no six digits", "tags: [tech, 2024, news]", "", ""},
		{"longer run skipped", "tags: [20240315]", "", ""},
		{"longer run then exact", "tags: [20240315, 202311]", "2023", "11"},
		{"embedded in word", "tags: [ep202405x]", "2024", "05"},
		{"no tags field", "title: \"x\"\n202401", "", ""},
		{"outside brackets ignored", "tags: [a]\n202401", "", ""},
		{"multiline list", "tags:\n  [\n  a,\n  202212\n]", "2022", "12"},
	}
	for _, tc := range cases {
		year, month := extract.ExtractTagsYYYYMM(tc.content)
		if year != tc.wantYear || month != tc.wantMonth {
			t.Fatalf("%s: got (%q, %q), want (%q, %q)", tc.name, year, month, tc.wantYear, tc.wantMonth)
		}
	}
}

func TestExtractDescription(t *testing.T) {
	cases := map[string]string{
		`description: "A short summary"`:   "A short summary",
		`description: '  padded  '`:        "padded",
		"description: bare words here\nx":  "bare words here",
		`description: ""`:                  "",
		"title: \"x\"":                     "",
		`description: "It's cut"`:          "It",
	}
	for content, want := range cases {
		if got := extract.ExtractDescription(content); got != want {
			t.Fatalf("ExtractDescription(%q) = %q, want %q", content, got, want)
		}
	}
}

func TestExtractFallbackAbstract(t *testing.T) {
	content := "---\ntitle: \"x\"\n---\n  First line  \n\nSecond line\n"
	if got := extract.ExtractFallbackAbstract(content); got != "First line  Second line" {
		t.Fatalf("unexpected abstract %q", got)
	}

	if got := extract.ExtractFallbackAbstract("---\nonly one delimiter\n"); got != "" {
		t.Fatalf("expected empty abstract without second delimiter, got %q", got)
	}

	indented := "  ---  \nfront\n ---\r\nbody text\r\n--- \nmore"
	if got := extract.ExtractFallbackAbstract(indented); got != "body text --- more" {
		t.Fatalf("unexpected abstract with padded delimiters %q", got)
	}
}

func TestExtractFallbackAbstractTruncation(t *testing.T) {
	exact := strings.Repeat("a", extract.AbstractLimit)
	if got := extract.ExtractFallbackAbstract("---\n---\n" + exact); got != exact {
		t.Fatalf("expected exact-length body untouched, got %d chars", len(got))
	}

	long := strings.Repeat("é", extract.AbstractLimit+1)
	got := extract.ExtractFallbackAbstract("---\n---\n" + long)
	if !strings.HasSuffix(got, extract.TruncationMarker) {
		t.Fatalf("expected truncation marker, got %q", got)
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, extract.TruncationMarker)); n != extract.AbstractLimit {
		t.Fatalf("expected %d characters before marker, got %d", extract.AbstractLimit, n)
	}
}

func TestTruncate(t *testing.T) {
	if got := extract.Truncate("héllo", 2); got != "hé..." {
		t.Fatalf("unexpected truncate %q", got)
	}
	if got := extract.Truncate("hi", 2); got != "hi" {
		t.Fatalf("unexpected truncate %q", got)
	}
	if got := extract.Truncate("", 0); got != "" {
		t.Fatalf("unexpected truncate %q", got)
	}
}
