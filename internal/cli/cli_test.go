package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/happyhackingspace/wordalign"
	"github.com/happyhackingspace/wordalign/corpus"
)

func writeFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"news.f": "the cat sleeps\nthe dog sleeps\na cat eats\nthe dog eats\n",
		"news.e": "le chat dort\nle chien dort\nun chat mange\nle chien mange\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestAlignCommandOutput(t *testing.T) {
	dir := writeFolder(t)
	out := filepath.Join(t.TempDir(), "out.align")

	c := New("test")
	c.rootCmd.SetArgs([]string{"align", "-s", "--data-folder", dir, "--model", "ibm2", "--output", out})
	if err := c.Run(); err != nil {
		t.Fatalf("align: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), data)
	}
	for i, line := range lines {
		if line != "0-0 1-1 2-2" {
			t.Errorf("line %d = %q, want %q", i, line, "0-0 1-1 2-2")
		}
	}
}

func TestAlignCommandUnknownModel(t *testing.T) {
	c := New("test")
	c.rootCmd.SetOut(&bytes.Buffer{})
	c.rootCmd.SetErr(&bytes.Buffer{})
	c.rootCmd.SetArgs([]string{"align", "-s", "--data-folder", writeFolder(t), "--model", "ibm9"})
	if err := c.Run(); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestWriteAlignments(t *testing.T) {
	var a, b corpus.Alignment
	a.Add(0, 1)
	a.Add(2, 0)
	result := &wordalign.Result{Alignments: []corpus.Alignment{a, b}}

	var buf bytes.Buffer
	if err := writeAlignments(&buf, result); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0-2 1-0\n\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCommandsRegistered(t *testing.T) {
	c := New("test")
	for _, name := range []string{"align", "evaluate", "up"} {
		cmd, _, err := c.rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
