package fileutil

import (
	"path/filepath"
	"testing"
)

func TestTreeStats(t *testing.T) {
	tests := []struct {
		name      string
		entries   map[string][]byte
		wantFiles int
		wantSize  int64
	}{
		{
			name:      "empty tree",
			entries:   map[string][]byte{},
			wantFiles: 0,
			wantSize:  0,
		},
		{
			name: "flat files",
			entries: map[string][]byte{
				"a.dat": {1, 2, 3},
				"b.dat": {4, 5},
			},
			wantFiles: 2,
			wantSize:  5,
		},
		{
			name: "nested with empty directory",
			entries: map[string][]byte{
				"sub/deep/file.bin": {0xFF},
				"sub/other.bin":     {1, 2, 3, 4},
				"hollow/":           nil,
			},
			wantFiles: 2,
			wantSize:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.entries)

			files, size, err := TreeStats(root)
			if err != nil {
				t.Fatalf("TreeStats() error = %v", err)
			}
			if files != tt.wantFiles {
				t.Errorf("files = %d, want %d", files, tt.wantFiles)
			}
			if size != tt.wantSize {
				t.Errorf("size = %d, want %d", size, tt.wantSize)
			}
		})
	}
}

func TestTreeStats_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")

	if _, _, err := TreeStats(root); err == nil {
		t.Error("TreeStats() expected error for missing root")
	}
}
