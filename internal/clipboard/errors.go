package clipboard

import (
	"errors"

	"github.com/cumulus13/xcp-go/internal/pathutil"
)

// Sentinel errors for package clipboard.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrNotFound is returned when the item to clip does not exist, and by
	// Peek when nothing is clipped.
	ErrNotFound = pathutil.ErrNotFound

	// ErrEmptyClipboard is returned by Paste when nothing is clipped.
	ErrEmptyClipboard = errors.New("clipboard is empty")

	// ErrUserAborted is returned when the user declines an overwrite.
	ErrUserAborted = errors.New("aborted by user")

	// ErrSameItem is returned by Paste when the destination is the
	// clipboard item itself or lies inside it.
	ErrSameItem = errors.New("destination is the clipboard item")

	// ErrRecursionLimit is returned when resolving a paste destination
	// descends through more than maxPasteDepth directories.
	ErrRecursionLimit = errors.New("paste destination nested too deep")
)
