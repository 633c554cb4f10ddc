package render

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/afero"
)

// DefaultStyle is the chroma style used by Show.
const DefaultStyle = "monokai"

// sniffLen is how much of a file is inspected for NUL bytes.
const sniffLen = 8000

// Highlight writes src to w with terminal syntax highlighting. The lexer is
// picked from name, then from the content, then falls back to plain text.
func Highlight(w io.Writer, name string, src []byte, style string) error {
	lexer := lexers.Match(filepath.Base(name))
	if lexer == nil {
		lexer = lexers.Analyse(string(src))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(src))
	if err != nil {
		return fmt.Errorf("failed to tokenise %s: %w", name, err)
	}
	return formatter.Format(w, styles.Get(style), iterator)
}

// IsBinary reports whether data looks like binary content.
func IsBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// Show prints the item at path: a directory listing for directories, a size
// summary for binary files, and the text otherwise, highlighted when color is
// set.
func Show(w io.Writer, fs afero.Fs, path string, p Palette, color bool) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		infos, err := afero.ReadDir(fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		fmt.Fprintf(w, "%s%s/%s\n", p.Bold, info.Name(), p.Reset)
		for _, child := range infos {
			if child.IsDir() {
				fmt.Fprintf(w, "  %s%s/%s\n", p.Cyan, child.Name(), p.Reset)
				continue
			}
			fmt.Fprintf(w, "  %s%s%s %s(%s)%s\n",
				p.Green, child.Name(), p.Reset, p.Gray, FormatSize(child.Size()), p.Reset)
		}
		return nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if IsBinary(data) {
		fmt.Fprintf(w, "%s%s: binary file, %s%s\n", p.Gray, info.Name(), FormatSize(info.Size()), p.Reset)
		return nil
	}

	if !color {
		_, err := w.Write(data)
		return err
	}
	return Highlight(w, info.Name(), data, DefaultStyle)
}
