package clipboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cumulus13/xcp-go/internal/config"
	"github.com/cumulus13/xcp-go/internal/pathutil"
)

// maxPasteDepth bounds how many existing directories Paste descends through
// while resolving its destination.
const maxPasteDepth = 10

// SystemClipboard receives text for the operating system clipboard.
type SystemClipboard interface {
	WriteAll(text string) error
}

// Slot says where a clipboard entry lives.
type Slot string

const (
	SlotCurrent Slot = "current"
	SlotBackup  Slot = "backup"
)

// Entry describes one item in the clipboard storage.
type Entry struct {
	Name    string
	Path    string
	Slot    Slot
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// PasteResult reports what Paste copied and where.
type PasteResult struct {
	Item string // base name of the clipboard item
	Dest string // path it was pasted to
}

// Renamed reports whether the item was pasted under a different path than
// its own name.
func (r PasteResult) Renamed() bool {
	return r.Dest != r.Item
}

func (r PasteResult) String() string {
	if !r.Renamed() {
		return fmt.Sprintf("Pasted %s.", r.Item)
	}
	return fmt.Sprintf("Pasted %s as %s.", r.Item, r.Dest)
}

// Clipboard moves items between the working tree, the current slot and the
// backup ring described by a config.Config.
//
// Operations are not safe for concurrent use, neither within one process nor
// across processes sharing a root directory.
type Clipboard struct {
	config *config.Config
	fs     afero.Fs
	logger *zap.Logger
	now    func() time.Time

	// Prompt asks before Paste replaces an existing item.
	Prompt Prompter

	// System receives the path of each newly clipped item when
	// SyncSystemClipboard is enabled. Nil disables the sync.
	System SystemClipboard
}

// New returns a clipboard over cfg's directories on fs. The default prompter
// talks to stdin and stdout.
func New(cfg *config.Config, fs afero.Fs, logger *zap.Logger) *Clipboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clipboard{
		config: cfg,
		fs:     fs,
		logger: logger,
		now:    time.Now,
		Prompt: LinePrompter{In: os.Stdin, Out: os.Stdout},
	}
}

// makeDirs creates the root, current and backup directories.
func (c *Clipboard) makeDirs() error {
	for _, dir := range []string{c.config.RootDir, c.config.CurrentDir, c.config.BackupDir} {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if _, ok := c.fs.(*afero.OsFs); ok {
		if err := pathutil.MarkHidden(c.config.RootDir); err != nil {
			c.logger.Warn("Failed to hide clipboard directory",
				zap.String("dir", c.config.RootDir), zap.Error(err))
		}
	}
	return nil
}

// backup moves everything in the current slot into the backup ring, then
// deletes all but the MaxEntries newest backups.
func (c *Clipboard) backup() error {
	infos, err := afero.ReadDir(c.fs, c.config.CurrentDir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.config.CurrentDir, err)
	}

	// Each retired item is stamped so ring order is rotation order.
	rotated := c.now()
	for _, info := range infos {
		name, err := pathutil.UniqueName(c.fs, info.Name(), c.config.BackupDir)
		if err != nil {
			return err
		}

		src := filepath.Join(c.config.CurrentDir, info.Name())
		dest := filepath.Join(c.config.BackupDir, name)
		if err := pathutil.MoveItem(c.fs, src, dest); err != nil {
			return fmt.Errorf("failed to back up %s: %w", info.Name(), err)
		}
		if err := pathutil.Stamp(c.fs, dest, rotated); err != nil {
			c.logger.Warn("Failed to stamp backup", zap.String("item", name), zap.Error(err))
		}
		c.logger.Debug("Moved item to backup", zap.String("item", info.Name()), zap.String("as", name))
	}

	return c.trim()
}

func (c *Clipboard) trim() error {
	paths, err := pathutil.ListByAge(c.fs, c.config.BackupDir)
	if err != nil {
		return err
	}
	if len(paths) <= c.config.MaxEntries {
		return nil
	}

	for _, path := range paths[c.config.MaxEntries:] {
		if err := pathutil.RemoveItem(c.fs, path); err != nil {
			return fmt.Errorf("failed to trim backups: %w", err)
		}
		c.logger.Info("Removed old backup", zap.String("item", filepath.Base(path)))
	}
	return nil
}

// insert validates item, prepares the storage and rotates the current slot.
// It returns the absolute source path and its destination in the current slot.
func (c *Clipboard) insert(item string) (string, string, error) {
	src, err := filepath.Abs(item)
	if err != nil {
		return "", "", fmt.Errorf("invalid path %s: %w", item, err)
	}

	exists, err := pathutil.Exists(c.fs, src)
	if err != nil {
		return "", "", err
	}
	if !exists {
		return "", "", fmt.Errorf("%w: %s", ErrNotFound, item)
	}

	if err := c.makeDirs(); err != nil {
		return "", "", err
	}
	if err := c.backup(); err != nil {
		return "", "", err
	}

	return src, filepath.Join(c.config.CurrentDir, filepath.Base(src)), nil
}

// Copy copies item into the clipboard. The original stays where it is.
func (c *Clipboard) Copy(item string) error {
	src, dest, err := c.insert(item)
	if err != nil {
		return err
	}
	if err := pathutil.CopyItem(c.fs, src, dest); err != nil {
		return err
	}

	c.logger.Debug("Copied to clipboard", zap.String("item", src))
	c.syncSystem(dest)
	return nil
}

// Cut moves item into the clipboard.
func (c *Clipboard) Cut(item string) error {
	src, dest, err := c.insert(item)
	if err != nil {
		return err
	}
	if err := pathutil.MoveItem(c.fs, src, dest); err != nil {
		return err
	}

	c.logger.Debug("Moved to clipboard", zap.String("item", src))
	c.syncSystem(dest)
	return nil
}

func (c *Clipboard) syncSystem(path string) {
	if c.System == nil || !c.config.SyncSystemClipboard {
		return
	}
	if err := c.System.WriteAll(path); err != nil {
		c.logger.Warn("Failed to update system clipboard", zap.String("path", path), zap.Error(err))
	}
}

// Peek returns the name of the item in the current slot. When the slot holds
// several items the first in name order wins. An empty slot fails with an
// error matching both ErrNotFound and ErrEmptyClipboard.
func (c *Clipboard) Peek() (string, error) {
	infos, err := afero.ReadDir(c.fs, c.config.CurrentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %w", ErrEmptyClipboard, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", c.config.CurrentDir, err)
	}
	if len(infos) == 0 {
		return "", fmt.Errorf("%w: %w", ErrEmptyClipboard, ErrNotFound)
	}
	return infos[0].Name(), nil
}

// CurrentPath returns the path of the most recently modified item in the
// current slot.
func (c *Clipboard) CurrentPath() (string, error) {
	isDir, err := afero.DirExists(c.fs, c.config.CurrentDir)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", c.config.CurrentDir, err)
	}
	if !isDir {
		return "", ErrEmptyClipboard
	}

	paths, err := pathutil.ListByAge(c.fs, c.config.CurrentDir)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", ErrEmptyClipboard
	}
	return paths[0], nil
}

// Paste copies the current item to dest, or into the working directory under
// its own name when dest is empty. The clipboard itself is left unchanged.
func (c *Clipboard) Paste(dest string) (PasteResult, error) {
	src, err := c.CurrentPath()
	if err != nil {
		return PasteResult{}, err
	}

	src, err = filepath.Abs(src)
	if err != nil {
		return PasteResult{}, fmt.Errorf("invalid path %s: %w", src, err)
	}
	item := filepath.Base(src)
	if dest == "" {
		dest = item
	}

	dest, overwrite, err := c.resolveDest(src, dest)
	if err != nil {
		return PasteResult{}, err
	}

	if overwrite {
		if err := pathutil.RemoveItem(c.fs, dest); err != nil {
			return PasteResult{}, err
		}
	}
	if err := pathutil.CopyItem(c.fs, src, dest); err != nil {
		return PasteResult{}, err
	}

	c.logger.Debug("Pasted from clipboard", zap.String("item", item), zap.String("dest", dest))
	return PasteResult{Item: item, Dest: dest}, nil
}

// overlaps reports whether dest is the clipboard item src itself, or lies
// inside it when the item is a directory. src must be absolute.
func (c *Clipboard) overlaps(src, dest string) (bool, error) {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return false, fmt.Errorf("invalid path %s: %w", dest, err)
	}
	if abs == src || strings.HasPrefix(abs, src+string(filepath.Separator)) {
		return true, nil
	}

	// Another path to the same file, such as a symlinked directory.
	srcInfo, err := c.fs.Stat(src)
	if err != nil {
		return false, nil
	}
	destInfo, err := c.fs.Stat(abs)
	if err != nil {
		return false, nil
	}
	return os.SameFile(srcInfo, destInfo), nil
}

// resolveDest finds where a paste of src to dest really lands. Existing
// directories are descended into; an existing non-directory needs the
// user's consent, in which case overwrite is true. Nothing is prompted for
// or removed when the destination is the clipboard item itself.
func (c *Clipboard) resolveDest(src, dest string) (string, bool, error) {
	item := filepath.Base(src)
	for depth := 0; depth <= maxPasteDepth; depth++ {
		same, err := c.overlaps(src, dest)
		if err != nil {
			return "", false, err
		}
		if same {
			return "", false, fmt.Errorf("%w: %s", ErrSameItem, dest)
		}

		exists, err := pathutil.Exists(c.fs, dest)
		if err != nil {
			return "", false, err
		}
		if !exists {
			return dest, false, nil
		}

		isDir, err := afero.IsDir(c.fs, dest)
		if err != nil && !os.IsNotExist(err) {
			return "", false, fmt.Errorf("failed to check %s: %w", dest, err)
		}
		if isDir {
			dest = filepath.Join(dest, item)
			continue
		}

		ok, err := c.Prompt.Confirm(fmt.Sprintf("An item named %s already exists. Overwrite? [yN] ", dest))
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, fmt.Errorf("%w: %s already exists", ErrUserAborted, dest)
		}
		return dest, true, nil
	}

	return "", false, fmt.Errorf("%w: gave up at %s", ErrRecursionLimit, dest)
}

// Clean removes every clipped and backed-up item and recreates the empty
// storage. There is no way back.
func (c *Clipboard) Clean() error {
	for _, dir := range []string{c.config.CurrentDir, c.config.BackupDir} {
		if err := c.fs.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}
	if err := c.makeDirs(); err != nil {
		return err
	}

	c.logger.Info("Cleaned clipboard", zap.String("root", c.config.RootDir))
	return nil
}

// Entries lists the current slot followed by the backup ring, each newest
// first. Missing directories count as empty.
func (c *Clipboard) Entries() ([]Entry, error) {
	var entries []Entry
	for _, slot := range []struct {
		dir  string
		slot Slot
	}{
		{c.config.CurrentDir, SlotCurrent},
		{c.config.BackupDir, SlotBackup},
	} {
		isDir, err := afero.DirExists(c.fs, slot.dir)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", slot.dir, err)
		}
		if !isDir {
			continue
		}

		paths, err := pathutil.ListByAge(c.fs, slot.dir)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			info, err := c.fs.Stat(path)
			if err != nil {
				c.logger.Warn("Failed to stat clipboard entry", zap.String("path", path), zap.Error(err))
				continue
			}
			entries = append(entries, Entry{
				Name:    info.Name(),
				Path:    path,
				Slot:    slot.slot,
				IsDir:   info.IsDir(),
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
	}
	return entries, nil
}
