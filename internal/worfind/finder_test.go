package worfind

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(" 1996  6 3 1955 35.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mod := time.Now().Add(-age)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindLatestSFile(t *testing.T) {
	dir := t.TempDir()
	writeSFile(t, dir, "03-1955-35D.S199606", 2*time.Hour)
	newest := writeSFile(t, dir, "01-0210-00L.S199607", time.Minute)
	writeSFile(t, dir, "15-0800-12R.S199608", time.Hour)

	got, err := FindLatestSFile(dir)
	if err != nil {
		t.Fatalf("FindLatestSFile() error = %v", err)
	}
	if got != newest {
		t.Errorf("FindLatestSFile() = %q, want %q", got, newest)
	}
}

func TestFindLatestSFile_IgnoresNonSFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := writeSFile(t, dir, "03-1955-35D.S199606", time.Hour)

	got, err := FindLatestSFile(dir)
	if err != nil {
		t.Fatalf("FindLatestSFile() error = %v", err)
	}
	if got != want {
		t.Errorf("FindLatestSFile() = %q, want %q", got, want)
	}
}

func TestFindLatestSFile_Empty(t *testing.T) {
	_, err := FindLatestSFile(t.TempDir())
	if err != ErrNoSFiles {
		t.Errorf("error = %v, want ErrNoSFiles", err)
	}
}

func TestCurrentSFile_Pointer(t *testing.T) {
	dir := t.TempDir()
	writeSFile(t, dir, "01-0210-00L.S199607", time.Minute)
	want := writeSFile(t, dir, "03-1955-35D.S199606", 2*time.Hour)

	// The pointer names an older file; the pointer wins over mtime.
	if err := os.WriteFile(filepath.Join(dir, CurrentPointer),
		[]byte("03-1955-35D.S199606\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := CurrentSFile(dir)
	if err != nil {
		t.Fatalf("CurrentSFile() error = %v", err)
	}
	if got != want {
		t.Errorf("CurrentSFile() = %q, want %q", got, want)
	}
}

func TestCurrentSFile_StalePointer(t *testing.T) {
	dir := t.TempDir()
	want := writeSFile(t, dir, "03-1955-35D.S199606", time.Hour)

	if err := os.WriteFile(filepath.Join(dir, CurrentPointer),
		[]byte("gone.S199001\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := CurrentSFile(dir)
	if err != nil {
		t.Fatalf("CurrentSFile() error = %v", err)
	}
	if got != want {
		t.Errorf("CurrentSFile() = %q, want %q (stale pointer must fall back)", got, want)
	}
}

func TestCurrentSFile_NoPointerNoFiles(t *testing.T) {
	_, err := CurrentSFile(t.TempDir())
	if err != ErrNoSFiles {
		t.Errorf("error = %v, want ErrNoSFiles", err)
	}
}

func TestFindWorkDir(t *testing.T) {
	dir := t.TempDir()
	writeSFile(t, dir, "03-1955-35D.S199606", time.Hour)

	t.Run("explicit", func(t *testing.T) {
		got, err := FindWorkDir(dir)
		if err != nil {
			t.Fatalf("FindWorkDir() error = %v", err)
		}
		if filepath.Base(got) != filepath.Base(dir) {
			t.Errorf("FindWorkDir() = %q, want %q", got, dir)
		}
	})

	t.Run("explicit invalid", func(t *testing.T) {
		if _, err := FindWorkDir(filepath.Join(dir, "missing")); err == nil {
			t.Error("want error for a non-existent directory")
		}
	})

	t.Run("explicit without sfiles", func(t *testing.T) {
		if _, err := FindWorkDir(t.TempDir()); err == nil {
			t.Error("want error for a directory holding no S-files")
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(EnvWorkDir, dir)
		got, err := FindWorkDir("")
		if err != nil {
			t.Fatalf("FindWorkDir() error = %v", err)
		}
		if filepath.Base(got) != filepath.Base(dir) {
			t.Errorf("FindWorkDir() = %q, want %q", got, dir)
		}
	})

	t.Run("environment variable invalid", func(t *testing.T) {
		t.Setenv(EnvWorkDir, filepath.Join(dir, "missing"))
		if _, err := FindWorkDir(""); err == nil {
			t.Error("want error for an invalid environment setting")
		}
	})
}
