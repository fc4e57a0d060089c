package fs

import (
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/fwojciec/refdex"
)

// Selector copies documentation pages whose base names match the include
// patterns into a working directory, skipping excluded names. Patterns use
// path.Match syntax and are evaluated against base file names.
type Selector struct {
	Include []string
	Exclude []string
}

// Matches reports whether a base file name passes the selector.
// Exclusions take precedence over inclusions. Invalid patterns never match.
func (s *Selector) Matches(name string) bool {
	for _, pattern := range s.Exclude {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return false
		}
	}
	for _, pattern := range s.Include {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// CopyMatching copies matching files from srcDir into dstDir and returns the
// number of files copied. The destination directory is recreated from
// scratch. A missing source directory is a fatal prerequisite error.
func (s *Selector) CopyMatching(srcDir, dstDir string) (int, error) {
	if _, err := os.Stat(srcDir); err != nil {
		return 0, refdex.Errorf(refdex.ENOTFOUND, "source directory %q not found", srcDir)
	}

	if err := os.RemoveAll(dstDir); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !s.Matches(entry.Name()) {
			continue
		}
		if err := copyFile(
			filepath.Join(srcDir, entry.Name()),
			filepath.Join(dstDir, entry.Name()),
		); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
