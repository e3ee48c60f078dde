package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yukifiles/go/internal/types"
)

// Unlimited disables the depth limit
const Unlimited = -1

// Scanner finds the files below a root directory that are eligible for upload
type Scanner struct {
	RootPath string
	MaxDepth int
}

// New creates a new Scanner instance
func New(path string, maxDepth int) (*Scanner, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	return &Scanner{
		RootPath: absPath,
		MaxDepth: maxDepth,
	}, nil
}

// Scan walks the directory tree and returns the regular files it contains,
// in lexical order.
func (s *Scanner) Scan() ([]*types.LocalFile, error) {
	var files []*types.LocalFile

	err := filepath.Walk(s.RootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error accessing path")
			return nil // Continue walking
		}

		relPath, err := filepath.Rel(s.RootPath, path)
		if err != nil {
			return nil
		}
		depth := len(strings.Split(relPath, string(os.PathSeparator)))
		if relPath == "." {
			depth = 0
		}

		if s.MaxDepth >= 0 && depth > s.MaxDepth {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path != s.RootPath && shouldSkip(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if shouldSkip(path) || !info.Mode().IsRegular() {
			return nil
		}

		files = append(files, newLocalFile(path, info))
		return nil
	})

	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(files)).Str("root", s.RootPath).Msg("Scanner found files")
	return files, nil
}

// Collect resolves command line arguments into files. Files are taken as
// given; directories are scanned up to maxDepth. Duplicate paths are dropped.
func Collect(paths []string, maxDepth int) ([]*types.LocalFile, error) {
	var files []*types.LocalFile
	seen := make(map[string]bool)

	add := func(f *types.LocalFile) {
		if seen[f.Path] {
			return
		}
		seen[f.Path] = true
		files = append(files, f)
	}

	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", p, err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(newLocalFile(absPath, info))
			continue
		}

		s, err := New(absPath, maxDepth)
		if err != nil {
			return nil, err
		}
		found, err := s.Scan()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
		for _, f := range found {
			add(f)
		}
	}

	return files, nil
}

func newLocalFile(path string, info os.FileInfo) *types.LocalFile {
	return &types.LocalFile{
		Path:         path,
		Name:         info.Name(),
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
	}
}

func shouldSkip(path string) bool {
	filename := filepath.Base(path)

	// Skip hidden files/folders
	if strings.HasPrefix(filename, ".") {
		return true
	}

	// Skip incomplete browser downloads
	if strings.HasSuffix(filename, ".download") || strings.HasSuffix(filename, ".crdownload") || strings.HasSuffix(filename, ".part") {
		return true
	}

	// Skip known system directories
	skipDirs := []string{"node_modules", "__pycache__"}
	for _, d := range skipDirs {
		if filename == d {
			return true
		}
	}

	return false
}
