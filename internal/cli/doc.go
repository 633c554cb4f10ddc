// Package cli implements the xcp command line.
//
// Commands are built with Cobra and executed through Fang by the xcp binary.
// Each command constructor takes the shared app state, which lazily loads the
// config file and builds the logger and clipboard on first use, so help,
// version and 'config path' never touch the filesystem.
//
// Clipboard operations:
//   - copy|c, cut|x: put an item into the clipboard
//   - paste|p|v: copy the clipboard item into the working directory
//   - clean: drop the clipboard and its backups
//
// Inspection:
//   - peek, list|ls, show, watch
//   - config show|path|init
package cli
