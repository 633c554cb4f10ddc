// Package clipboard implements the xcp file clipboard.
//
// The clipboard lives under a root directory with two slots:
//
//	<root>/current  the item most recently cut or copied
//	<root>/old      the backup ring of retired items
//
// Every Copy or Cut first rotates whatever sits in current into old, renaming
// on collision (foo.txt, foo.txt_1, ...) and stamping it with the rotation
// time. The ring is then trimmed to the configured number of newest entries
// and the new item lands in current.
//
// Paste never consumes the clipboard. When the destination is an existing
// directory the item is placed inside it; an existing file is only replaced
// after the Prompter agrees.
package clipboard
