package pathutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// lstat stats path without following a trailing symlink when the filesystem
// supports it.
func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// Exists reports whether anything, including a dangling symlink, lives at path.
func Exists(fs afero.Fs, path string) (bool, error) {
	_, err := lstat(fs, path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}

// CopyItem copies the file or directory at src to dest.
// Directories are copied recursively. dest must not exist.
func CopyItem(fs afero.Fs, src, dest string) error {
	info, err := lstat(fs, src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, src)
		}
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	exists, err := Exists(fs, dest)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, dest)
	}

	switch {
	case info.IsDir():
		return copyTree(fs, src, dest)
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(fs, src, dest)
	default:
		return copyFile(fs, src, dest, info.Mode().Perm())
	}
}

func copyTree(fs afero.Fs, src, dest string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		switch {
		case info.IsDir():
			// Owner write is kept so children can still be created.
			if err := fs.Mkdir(target, info.Mode().Perm()|0o700); err != nil {
				if os.IsExist(err) {
					return fmt.Errorf("%w: %s", ErrAlreadyExists, target)
				}
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		case info.Mode()&os.ModeSymlink != 0:
			return copySymlink(fs, path, target)
		default:
			return copyFile(fs, path, target, info.Mode().Perm())
		}
	})
}

func copyFile(fs afero.Fs, src, dest string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, dest)
		}
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}

// copySymlink recreates the link itself. Filesystems without link support get
// a copy of whatever the link points at.
func copySymlink(fs afero.Fs, src, dest string) error {
	sl, ok := fs.(afero.Symlinker)
	if !ok {
		info, err := fs.Stat(src)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", src, err)
		}
		if info.IsDir() {
			return copyTree(fs, src, dest)
		}
		return copyFile(fs, src, dest, info.Mode().Perm())
	}

	target, err := sl.ReadlinkIfPossible(src)
	if err != nil {
		return fmt.Errorf("failed to read link %s: %w", src, err)
	}
	if err := sl.SymlinkIfPossible(target, dest); err != nil {
		return fmt.Errorf("failed to create link %s: %w", dest, err)
	}
	return nil
}

// RemoveItem deletes a file, or a directory and everything below it.
func RemoveItem(fs afero.Fs, path string) error {
	info, err := lstat(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		err = fs.RemoveAll(path)
	} else {
		err = fs.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// MoveItem renames src to dest, falling back to copy-then-remove when the two
// paths live on different devices. dest must not exist.
func MoveItem(fs afero.Fs, src, dest string) error {
	if _, err := lstat(fs, src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, src)
		}
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	exists, err := Exists(fs, dest)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, dest)
	}

	err = fs.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return fmt.Errorf("failed to move %s: %w", src, err)
	}

	if err := CopyItem(fs, src, dest); err != nil {
		return err
	}
	return RemoveItem(fs, src)
}

// ListByAge returns the paths of every entry directly inside dir, most
// recently modified first. Entries with equal times keep name order.
func ListByAge(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].ModTime().After(infos[j].ModTime())
	})

	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		paths = append(paths, filepath.Join(dir, info.Name()))
	}
	return paths, nil
}

// UniqueName returns name if nothing called name exists in dir, otherwise the
// first of name_1, name_2, ... that is free.
func UniqueName(fs afero.Fs, name, dir string) (string, error) {
	candidate := name
	for counter := 1; ; counter++ {
		exists, err := Exists(fs, filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", name, counter)
	}
}

// Stamp sets the access and modification times of the item at path. A
// symlink gets its own times changed; its target is never touched. Where the
// platform cannot stamp a link, the link is left as is.
func Stamp(fs afero.Fs, path string, t time.Time) error {
	info, err := lstat(fs, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return fs.Chtimes(path, t, t)
	}
	if _, ok := fs.(*afero.OsFs); !ok {
		return nil
	}
	if err := lutimes(path, t); err != nil && !errors.Is(err, errors.ErrUnsupported) {
		return fmt.Errorf("failed to stamp link %s: %w", path, err)
	}
	return nil
}
