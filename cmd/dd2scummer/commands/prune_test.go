package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

func TestRunPrune_RemovesOldest(t *testing.T) {
	origKeep := pruneKeep
	defer func() { pruneKeep = origKeep }()
	pruneKeep = 2

	appDataDir := t.TempDir()
	useAppData(t, appDataDir)
	seedSnapshots(t, appDataDir,
		"2026-08-22T10-00-00.000000",
		"2026-08-22T11-00-00.000000",
		"2026-08-22T12-00-00.000000",
	)

	var buf bytes.Buffer
	if err := runPruneWithWriter(&buf); err != nil {
		t.Fatalf("runPruneWithWriter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "✓ removed 2026-08-22T10-00-00.000000") {
		t.Errorf("expected the oldest snapshot removed, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Total: removed 1 snapshot(s)") {
		t.Errorf("expected a total line, got %q", buf.String())
	}

	entries, err := os.ReadDir(filepath.Join(appDataDir, scumstore.DirName))
	if err != nil {
		t.Fatalf("reading scumm dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 snapshots left, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Name() == "2026-08-22T10-00-00.000000" {
			t.Error("the oldest snapshot should be gone")
		}
	}
}

func TestRunPrune_NothingToPrune(t *testing.T) {
	origKeep := pruneKeep
	defer func() { pruneKeep = origKeep }()
	pruneKeep = 2

	appDataDir := t.TempDir()
	useAppData(t, appDataDir)
	seedSnapshots(t, appDataDir, "2026-08-22T10-00-00.000000")

	var buf bytes.Buffer
	if err := runPruneWithWriter(&buf); err != nil {
		t.Fatalf("runPruneWithWriter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No snapshots to prune") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRunPrune_EmptyStore(t *testing.T) {
	origKeep := pruneKeep
	defer func() { pruneKeep = origKeep }()
	pruneKeep = 2

	useAppData(t, t.TempDir())

	var buf bytes.Buffer
	if err := runPruneWithWriter(&buf); err != nil {
		t.Fatalf("runPruneWithWriter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No snapshots to prune") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRunPrune_DefaultFromConfig(t *testing.T) {
	origKeep := pruneKeep
	defer func() { pruneKeep = origKeep }()
	pruneKeep = 0

	appDataDir := t.TempDir()
	useAppData(t, appDataDir)
	loadedCfg.Retention = 1

	seedSnapshots(t, appDataDir,
		"2026-08-22T10-00-00.000000",
		"2026-08-22T11-00-00.000000",
		"2026-08-22T12-00-00.000000",
	)

	var buf bytes.Buffer
	if err := runPruneWithWriter(&buf); err != nil {
		t.Fatalf("runPruneWithWriter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Total: removed 2 snapshot(s)") {
		t.Errorf("expected config retention to apply, got %q", buf.String())
	}

	entries, err := os.ReadDir(filepath.Join(appDataDir, scumstore.DirName))
	if err != nil {
		t.Fatalf("reading scumm dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "2026-08-22T12-00-00.000000" {
		t.Errorf("expected only the newest snapshot left, got %v", entries)
	}
}

func TestRunPrune_NegativeKeep(t *testing.T) {
	origKeep := pruneKeep
	defer func() { pruneKeep = origKeep }()
	pruneKeep = -1

	var buf bytes.Buffer
	err := runPruneWithWriter(&buf)
	if err == nil {
		t.Error("expected error for negative keep value")
	}
	if !strings.Contains(err.Error(), "--keep must be positive") {
		t.Errorf("unexpected error: %v", err)
	}
}
