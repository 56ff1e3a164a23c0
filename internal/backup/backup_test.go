package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "tick.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	store := writeStore(t, t.TempDir(), `{"activities":[]}`)
	mgr := NewManager(store)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != `{"activities":[]}` {
		t.Errorf("backup content = %q, %v", data, err)
	}

	infos, err := mgr.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 1 || infos[0].Path != path {
		t.Errorf("list = %+v", infos)
	}
}

func TestCreateWithoutStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error when store file is missing")
	}
}

func TestListEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "tick.json"))
	infos, err := mgr.List()
	if err != nil || infos != nil {
		t.Errorf("list = %+v, %v; want empty", infos, err)
	}
}

func TestRestoreReplacesStoreAndKeepsSafetyCopy(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, `{"v":"old"}`)
	mgr := NewManager(store)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(store, []byte(`{"v":"new"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("restore: %v", err)
	}

	data, _ := os.ReadFile(store)
	if string(data) != `{"v":"old"}` {
		t.Errorf("store after restore = %q", data)
	}

	// The pre-restore state must have been backed up too.
	infos, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) < 2 {
		t.Errorf("backups after restore = %d, want at least 2", len(infos))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	mgr := NewManager(writeStore(t, t.TempDir(), "{}"))
	if err := mgr.Restore(filepath.Join(mgr.BackupDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup")
	}
}
