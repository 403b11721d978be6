package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGetConfigDefaults(t *testing.T) {
	config, err := NewStorage(t.TempDir()).GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *config != DefaultConfig() {
		t.Errorf("GetConfig = %+v, want %+v", *config, DefaultConfig())
	}
}

func TestGetConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"source_ext": "de", "target_ext": "en"}`)
	config, err := NewStorage(dir).GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{SourceExt: "de", TargetExt: "en", GoldExt: "wa"}
	if *config != want {
		t.Errorf("GetConfig = %+v, want %+v", *config, want)
	}
}

func TestGetConfigSameExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"source_ext": "txt", "target_ext": "txt"}`)
	if _, err := NewStorage(dir).GetConfig(); err == nil {
		t.Error("expected error for identical extensions")
	}
}

func TestIterPairs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.f", "le chat\nle chien\n")
	writeFile(t, dir, "b.e", "the cat\nthe dog\n")
	writeFile(t, dir, "a.f", "Bonjour .\n\n")
	writeFile(t, dir, "a.e", "Hello .\nnothing here\n")
	writeFile(t, dir, "b.wa", "1 1 1 S\n1 2 2\n2 2 2 P\n")
	writeFile(t, dir, "orphan.f", "seul\n")

	opts := DefaultIterOptions()
	opts.Lowercase = true
	records, err := NewStorage(dir).IterPairs(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	first := records[0]
	if first.Document != "a" || first.Line != 1 {
		t.Errorf("first record = %s:%d, want a:1", first.Document, first.Line)
	}
	if !reflect.DeepEqual(first.Pair.Source, []string{"bonjour", "."}) {
		t.Errorf("Source = %v", first.Pair.Source)
	}
	if len(records[1].Pair.Source) != 0 || len(records[1].Pair.Target) != 2 {
		t.Errorf("empty source line should give an empty source sentence, got %+v", records[1].Pair)
	}
	if first.Gold != nil {
		t.Error("document a has no gold file")
	}

	g := records[2].Gold
	if g == nil {
		t.Fatal("expected gold links for b:1")
	}
	if len(g.Sure) != 2 || len(g.Possible) != 2 {
		t.Errorf("b:1 gold sure=%d possible=%d, want 2, 2", len(g.Sure), len(g.Possible))
	}
	g2 := records[3].Gold
	if g2 == nil || len(g2.Sure) != 0 || len(g2.Possible) != 1 {
		t.Errorf("b:2 gold = %+v, want one possible link", g2)
	}

	if got := len(Pairs(records)); got != 4 {
		t.Errorf("Pairs len = %d, want 4", got)
	}
}

func TestIterPairsFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.f", "a b\na b\na b c d\n")
	writeFile(t, dir, "c.e", "x y\nx y\nw x y z\n")

	opts := DefaultIterOptions()
	opts.DropDuplicates = true
	opts.MaxLength = 3
	records, err := NewStorage(dir).IterPairs(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Line != 1 {
		t.Errorf("Line = %d, want 1", records[0].Line)
	}
}

func TestIterPairsLineMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "d.f", "a\nb\n")
	writeFile(t, dir, "d.e", "x\n")
	_, err := NewStorage(dir).IterPairs(DefaultIterOptions())
	if err == nil || !strings.Contains(err.Error(), "2 source lines but 1 target lines") {
		t.Errorf("err = %v, want line count mismatch", err)
	}
}

func TestReadGoldFileErrors(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"1 2\n", "expected 3 to 5 fields"},
		{"1 x 2\n", "field 2"},
		{"1 0 2\n", "1-based"},
		{"1 1 1 Q\n", "unknown link label"},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		writeFile(t, dir, "g.wa", tt.content)
		_, err := ReadGoldFile(filepath.Join(dir, "g.wa"))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("ReadGoldFile(%q) err = %v, want %q", tt.content, err, tt.want)
		}
	}
}
