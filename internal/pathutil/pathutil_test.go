package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestUniqueName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		dirs     []string
		input    string
		expected string
	}{
		{
			name:     "free name is returned unchanged",
			existing: []string{"bar.txt"},
			input:    "foo.txt",
			expected: "foo.txt",
		},
		{
			name:     "first collision gets suffix 1",
			existing: []string{"foo.txt"},
			input:    "foo.txt",
			expected: "foo.txt_1",
		},
		{
			name:     "suffixes keep counting",
			existing: []string{"foo.txt", "foo.txt_1", "foo.txt_2"},
			input:    "foo.txt",
			expected: "foo.txt_3",
		},
		{
			name:     "gap in suffixes is reused",
			existing: []string{"foo.txt", "foo.txt_2"},
			input:    "foo.txt",
			expected: "foo.txt_1",
		},
		{
			name:     "directory names collide too",
			dirs:     []string{"photos"},
			input:    "photos",
			expected: "photos_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			dir := "/clip/old"
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				t.Fatal(err)
			}
			for _, name := range tt.existing {
				writeFile(t, fs, filepath.Join(dir, name), name)
			}
			for _, name := range tt.dirs {
				if err := fs.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := UniqueName(fs, tt.input, dir)
			if err != nil {
				t.Fatalf("UniqueName(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("UniqueName(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestListByAge(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/clip/old"
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ages := map[string]time.Duration{
		"a.txt": 3 * time.Hour,
		"b.txt": 1 * time.Hour,
		"c.txt": 2 * time.Hour,
		"d.txt": 1 * time.Hour,
	}
	for name, age := range ages {
		path := filepath.Join(dir, name)
		writeFile(t, fs, path, name)
		mtime := base.Add(-age)
		if err := fs.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := ListByAge(fs, dir)
	if err != nil {
		t.Fatalf("ListByAge error: %v", err)
	}

	expected := []string{"b.txt", "d.txt", "c.txt", "a.txt"}
	if len(paths) != len(expected) {
		t.Fatalf("ListByAge returned %d paths, expected %d", len(paths), len(expected))
	}
	for i, path := range paths {
		if path != filepath.Join(dir, expected[i]) {
			t.Errorf("paths[%d] = %q, expected %q", i, path, filepath.Join(dir, expected[i]))
		}
	}
}

func TestListByAgeMissingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := ListByAge(fs, "/nowhere"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCopyItemFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/foo.txt", "this is foo")
	if err := fs.MkdirAll("/clip/current", 0o755); err != nil {
		t.Fatal(err)
	}

	if err := CopyItem(fs, "/work/foo.txt", "/clip/current/foo.txt"); err != nil {
		t.Fatalf("CopyItem error: %v", err)
	}

	if got := readFile(t, fs, "/clip/current/foo.txt"); got != "this is foo" {
		t.Errorf("copied content = %q", got)
	}
	if got := readFile(t, fs, "/work/foo.txt"); got != "this is foo" {
		t.Errorf("source content changed to %q", got)
	}
}

func TestCopyItemRefusesExistingDestination(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/foo.txt", "new")
	writeFile(t, fs, "/work/bar.txt", "old")

	err := CopyItem(fs, "/work/foo.txt", "/work/bar.txt")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("CopyItem error = %v, expected ErrAlreadyExists", err)
	}
	if got := readFile(t, fs, "/work/bar.txt"); got != "old" {
		t.Errorf("destination overwritten with %q", got)
	}
}

func TestCopyItemMissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := CopyItem(fs, "/work/ghost.txt", "/work/copy.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("CopyItem error = %v, expected ErrNotFound", err)
	}
}

func TestCopyItemDirectory(t *testing.T) {
	fs := afero.NewOsFs()
	root := t.TempDir()
	src := filepath.Join(root, "project")

	files := map[string]string{
		"README.md":          "readme",
		"src/main.go":        "package main",
		"src/internal/x.go":  "package internal",
		"assets/logo.txt":    "logo",
		"assets/empty/.keep": "",
	}
	for rel, content := range files {
		writeFile(t, fs, filepath.Join(src, rel), content)
	}

	dest := filepath.Join(root, "copy")
	if err := CopyItem(fs, src, dest); err != nil {
		t.Fatalf("CopyItem error: %v", err)
	}

	for rel, content := range files {
		if got := readFile(t, fs, filepath.Join(dest, rel)); got != content {
			t.Errorf("%s = %q, expected %q", rel, got, content)
		}
	}

	if err := CopyItem(fs, src, dest); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second CopyItem error = %v, expected ErrAlreadyExists", err)
	}
}

func TestCopyItemKeepsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	fs := afero.NewOsFs()
	root := t.TempDir()
	src := filepath.Join(root, "dir")
	writeFile(t, fs, filepath.Join(src, "target.txt"), "target")
	if err := os.Symlink("target.txt", filepath.Join(src, "link.txt")); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(root, "copy")
	if err := CopyItem(fs, src, dest); err != nil {
		t.Fatalf("CopyItem error: %v", err)
	}

	target, err := os.Readlink(filepath.Join(dest, "link.txt"))
	if err != nil {
		t.Fatalf("link not recreated: %v", err)
	}
	if target != "target.txt" {
		t.Errorf("link target = %q, expected target.txt", target)
	}
}

func TestRemoveItem(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, fs afero.Fs) string
	}{
		{
			name: "file",
			setup: func(t *testing.T, fs afero.Fs) string {
				writeFile(t, fs, "/clip/old/foo.txt", "foo")
				return "/clip/old/foo.txt"
			},
		},
		{
			name: "directory tree",
			setup: func(t *testing.T, fs afero.Fs) string {
				writeFile(t, fs, "/clip/old/dir/a/b.txt", "b")
				writeFile(t, fs, "/clip/old/dir/c.txt", "c")
				return "/clip/old/dir"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := tt.setup(t, fs)

			if err := RemoveItem(fs, path); err != nil {
				t.Fatalf("RemoveItem error: %v", err)
			}
			exists, err := Exists(fs, path)
			if err != nil {
				t.Fatal(err)
			}
			if exists {
				t.Errorf("%s still exists", path)
			}
		})
	}
}

func TestRemoveItemMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := RemoveItem(fs, "/clip/old/ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveItem error = %v, expected ErrNotFound", err)
	}
}

func TestMoveItem(t *testing.T) {
	fs := afero.NewOsFs()
	root := t.TempDir()
	src := filepath.Join(root, "work", "foo.txt")
	dest := filepath.Join(root, "clip", "foo.txt")
	writeFile(t, fs, src, "this is foo")
	if err := fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := MoveItem(fs, src, dest); err != nil {
		t.Fatalf("MoveItem error: %v", err)
	}

	if exists, _ := Exists(fs, src); exists {
		t.Error("source still exists after move")
	}
	if got := readFile(t, fs, dest); got != "this is foo" {
		t.Errorf("moved content = %q", got)
	}
}

func TestMoveItemRefusesExistingDestination(t *testing.T) {
	fs := afero.NewOsFs()
	root := t.TempDir()
	src := filepath.Join(root, "foo.txt")
	dest := filepath.Join(root, "bar.txt")
	writeFile(t, fs, src, "foo")
	writeFile(t, fs, dest, "bar")

	if err := MoveItem(fs, src, dest); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("MoveItem error = %v, expected ErrAlreadyExists", err)
	}
	if got := readFile(t, fs, src); got != "foo" {
		t.Errorf("source content = %q", got)
	}
	if got := readFile(t, fs, dest); got != "bar" {
		t.Errorf("destination content = %q", got)
	}
}

func TestStampFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/clip/foo.txt", "foo")
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := Stamp(fs, "/clip/foo.txt", stamp); err != nil {
		t.Fatalf("Stamp error: %v", err)
	}
	info, err := fs.Stat("/clip/foo.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(stamp) {
		t.Errorf("mtime = %v, expected %v", info.ModTime(), stamp)
	}
}

func TestStampLeavesLinkTargetAlone(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	fs := afero.NewOsFs()
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link.txt")
	writeFile(t, fs, target, "target")
	old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := os.Chtimes(target, old, old); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := Stamp(fs, link, stamp); err != nil {
		t.Fatalf("Stamp error: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("target mtime = %v, expected %v", info.ModTime(), old)
	}

	if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
		linfo, err := os.Lstat(link)
		if err != nil {
			t.Fatal(err)
		}
		if !linfo.ModTime().Equal(stamp) {
			t.Errorf("link mtime = %v, expected %v", linfo.ModTime(), stamp)
		}
	}
}

func TestStampMissing(t *testing.T) {
	if err := Stamp(afero.NewMemMapFs(), "/nope", time.Now()); err == nil {
		t.Error("Stamp on a missing path succeeded")
	}
}
