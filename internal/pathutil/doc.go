// Package pathutil provides the filesystem helpers the clipboard is built on.
//
// Every function takes an afero.Fs so the same code runs against the real
// disk (afero.NewOsFs) and against in-memory filesystems in tests.
//
// Items are files or directories addressed by path:
//   - CopyItem, MoveItem and RemoveItem operate on a whole item
//   - ListByAge lists a directory newest-first, like `ls -t`
//   - UniqueName finds a free name inside a directory (foo, foo_1, foo_2, ...)
//
// Copy and move never replace an existing destination; they fail with
// ErrAlreadyExists and leave the decision to the caller.
package pathutil
