package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/mj1618/openwindows/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleWindows() []model.Window {
	return []model.Window{
		{PID: 201, App: "Mail", Title: "Inbox", ID: 12},
		{PID: 88, App: "Finder", Title: "Downloads"},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"human", "debug"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
		if string(f) != s {
			t.Errorf("ParseFormat(%q) = %q", s, f)
		}
	}
	for _, s := range []string{"", "json", "HUMAN"} {
		if _, err := ParseFormat(s); err == nil {
			t.Errorf("ParseFormat(%q) should fail", s)
		}
	}
}

func TestHumanLine_PadsApp(t *testing.T) {
	got := HumanLine(model.Window{App: "Mail", Title: "Inbox"}, 0)
	want := "App: Mail" + strings.Repeat(" ", 16) + " | Window: Inbox"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHumanLine_TruncatesLongApp(t *testing.T) {
	got := HumanLine(model.Window{App: "A Very Long Application Name", Title: "x"}, 0)
	want := "App: A Very Long Applicat | Window: x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHumanLine_WideRunes(t *testing.T) {
	got := HumanLine(model.Window{App: "メール", Title: "受信"}, 0)
	app := strings.TrimSuffix(strings.TrimPrefix(got, "App: "), " | Window: 受信")
	if w := runewidth.StringWidth(app); w != AppColumnWidth {
		t.Errorf("app column width = %d, want %d (line %q)", w, AppColumnWidth, got)
	}
}

func TestHumanLine_TerminalWidth(t *testing.T) {
	win := model.Window{App: "Safari", Title: strings.Repeat("t", 200)}
	got := HumanLine(win, 80)
	if w := runewidth.StringWidth(got); w > 80 {
		t.Errorf("line width = %d, want <= 80", w)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis on truncated title, got %q", got)
	}

	short := HumanLine(model.Window{App: "Safari", Title: "Home"}, 80)
	if !strings.HasSuffix(short, "Window: Home") {
		t.Errorf("short title should be untouched, got %q", short)
	}
}

func TestPrintWindows_Human(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintWindows(&buf, sampleWindows(), Options{Format: FormatHuman}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "App: Mail") || !strings.HasSuffix(lines[0], "Window: Inbox") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Window: Downloads") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestPrintWindows_Debug(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintWindows(&buf, sampleWindows(), Options{Format: FormatDebug}); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}
	first := decoded[0]
	if first["app"] != "Mail" || first["title"] != "Inbox" || first["pid"] != 201 {
		t.Errorf("unexpected first record: %v", first)
	}
	// Zero window id should be omitted
	if _, ok := decoded[1]["id"]; ok {
		t.Error("zero id should be omitted")
	}
}

func TestPrintWindows_EmptyWritesNothing(t *testing.T) {
	for _, f := range []Format{FormatHuman, FormatDebug} {
		var buf bytes.Buffer
		if err := PrintWindows(&buf, []model.Window{}, Options{Format: f}); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: expected no output, got %q", f, buf.String())
		}
	}
}

func TestPrintWindows_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintWindows(&buf, sampleWindows(), Options{Format: "json"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
