package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
)

func newTestUI(buf *bytes.Buffer) *TerminalUI {
	return &TerminalUI{
		out: buf,
		au:  aurora.NewAurora(false),
	}
}

func TestInfoIndentsChildOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	u := newTestUI(buf)

	u.Info("top")
	u.Indent().Info("nested")
	u.Indent().Indent().Info("deeper")

	expected := "top\n  nested\n    deeper\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestKeyValueAlignsValues(t *testing.T) {
	buf := &bytes.Buffer{}
	u := newTestUI(buf)

	u.KeyValue([][2]string{
		{"Chain ID", "42220"},
		{"Block time", "5s"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	first := strings.Index(lines[0], "42220")
	second := strings.Index(lines[1], "5s")
	if first != second {
		t.Errorf("values are not aligned: col %d vs col %d", first, second)
	}
}

func TestTableAlignsColouredCells(t *testing.T) {
	buf := &bytes.Buffer{}
	u := newTestUI(buf)

	au := aurora.NewAurora(true)
	u.Table(
		[]string{"Contract", "Address"},
		[][]string{
			{"GoldToken", au.Green("0x471EcE3750Da237f93B8E339c536989b8978a438").String()},
			{"Missing", au.Red("not deployed").String()},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 table lines, got %d:\n%s", len(lines), buf.String())
	}
	width := runewidth.StringWidth(ansi.Strip(lines[0]))
	for i, line := range lines {
		w := runewidth.StringWidth(ansi.Strip(line))
		if w != width {
			t.Errorf("line %d has visible width %d, expected %d", i, w, width)
		}
	}
}

func TestWriterPrependsIndent(t *testing.T) {
	buf := &bytes.Buffer{}
	u := newTestUI(buf)

	fmt.Fprintf(u.Indent().Writer(), "line one\nline two\n")

	expected := "  line one\n  line two\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestRecordingUISharesEntriesWithChildren(t *testing.T) {
	r := NewRecordingUI()
	r.Info("parent")
	r.Indent().Warn("child")

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Method != "Warn" || entries[1].Value != "child" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if !r.HasMessage("CHILD") {
		t.Errorf("HasMessage should match case-insensitively")
	}
}
