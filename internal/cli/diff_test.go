package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/seatforge/seatforge/pkg/manifest"
)

func writeManifestFixture(t *testing.T, path string, ids []string) {
	t.Helper()
	m, err := manifest.Generate("evt-1", ids)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := writeJSONFile(path, m); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.json")
	newPath := filepath.Join(dir, "new.json")
	outPath := filepath.Join(dir, "diff.json")

	writeManifestFixture(t, oldPath, []string{"a", "b", "c"})
	writeManifestFixture(t, newPath, []string{"b", "c", "d", "e"})

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"diff", oldPath, newPath, "-o", outPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read diff output: %v", err)
	}
	var d manifest.Diff
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("decode diff output: %v", err)
	}
	if !d.Changed {
		t.Error("diff should report a change")
	}
	if !reflect.DeepEqual(d.Added, []string{"d", "e"}) {
		t.Errorf("added = %v", d.Added)
	}
	if !reflect.DeepEqual(d.Removed, []string{"a"}) {
		t.Errorf("removed = %v", d.Removed)
	}
}

func TestTruncateList(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	if got := truncateList(ids, 10); !reflect.DeepEqual(got, ids) {
		t.Errorf("no truncation expected, got %v", got)
	}
	if got := truncateList(ids, 0); !reflect.DeepEqual(got, ids) {
		t.Errorf("n=0 disables truncation, got %v", got)
	}

	got := truncateList(ids, 2)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" {
		t.Errorf("truncated = %v", got)
	}
}
