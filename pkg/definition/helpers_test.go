package definition_test

import (
	"io/fs"
	"os"
	"testing"
)

func osDirFS(t *testing.T, dir string) fs.FS {
	t.Helper()
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("fixture dir %s: %v", dir, err)
	}
	return os.DirFS(dir)
}
