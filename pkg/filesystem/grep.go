package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scottcagno/kmp/pkg/search"
)

var ErrEmptyPattern = errors.New("grep: empty pattern")

// Match is one line containing the pattern.
type Match struct {
	Path    string
	Line    int   // 1-based line number
	Offsets []int // byte offsets of every occurrence within the line
	Text    string
}

func (m Match) String() string {
	return fmt.Sprintf("%s:%d:%s", m.Path, m.Line, m.Text)
}

// GrepWriter prints every line under the files matched by path (a glob such
// as "docs/*.txt") that contains pattern, as path:line:text.
func GrepWriter(w io.Writer, pattern string, path string) error {
	if w == nil {
		w = os.Stdout
	}
	return Grep(pattern, path, func(m Match) error {
		_, err := fmt.Fprintln(w, m)
		return err
	})
}

// Grep walks the directory part of path and calls fn for every matching
// line of every file whose path matches the glob. The pattern is compiled
// once and shared by every file.
func Grep(pattern string, path string, fn func(Match) error) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	p := search.CompileString(pattern)
	glob := filepath.ToSlash(filepath.Clean(path))
	dir, _ := filepath.Split(glob)
	if dir == "" {
		dir = "."
	}
	return filepath.WalkDir(dir, func(lpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		lpath = filepath.ToSlash(lpath)
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(glob, lpath)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fd, err := os.Open(lpath)
		if err != nil {
			return err
		}
		err = GrepReader(fd, lpath, p, fn)
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
		return err
	})
}

// GrepReader scans r line by line. Each line is searched on its own, so a
// pattern containing a newline never matches.
func GrepReader(r io.Reader, name string, p *search.Pattern[byte], fn func(Match) error) error {
	sc, ln := bufio.NewScanner(r), 1
	sc.Buffer(make([]byte, 64*1024), 16<<20)
	for sc.Scan() {
		if offsets := p.IndexAll(sc.Bytes()); len(offsets) > 0 {
			err := fn(Match{
				Path:    name,
				Line:    ln,
				Offsets: offsets,
				Text:    sc.Text(),
			})
			if err != nil {
				return err
			}
		}
		ln++
	}
	return sc.Err()
}
