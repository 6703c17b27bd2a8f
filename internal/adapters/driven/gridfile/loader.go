package gridfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/gearscan/internal/core/domain"
	"github.com/custodia-labs/gearscan/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.GridLoader = (*Loader)(nil)

// StdinPath is the path that makes Load read from standard input.
const StdinPath = "-"

// maxLineBytes bounds a single schematic row.
const maxLineBytes = 4 * 1024 * 1024

// Loader reads schematics from the local filesystem.
type Loader struct {
	dataDir string
	stdin   io.Reader
}

// NewLoader creates a loader. Relative paths that do not exist as given are
// looked up under dataDir when it is set.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir: dataDir,
		stdin:   os.Stdin,
	}
}

// WithStdin replaces the reader used for StdinPath.
func (l *Loader) WithStdin(r io.Reader) *Loader {
	l.stdin = r
	return l
}

// Resolve returns the file Load would read for path.
func (l *Loader) Resolve(path string) (string, error) {
	if path == "" {
		return "", domain.ErrEmptyPath
	}
	if exists(path) {
		return path, nil
	}
	if l.dataDir != "" && !filepath.IsAbs(path) {
		candidate := filepath.Join(l.dataDir, path)
		if exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrNotFound, path)
}

// Load reads the schematic at path, one grid row per line.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Grid, error) {
	if path == StdinPath {
		return ReadGrid(ctx, l.stdin)
	}

	resolved, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return ReadGrid(ctx, f)
}

// ReadGrid reads one grid row per line from r. Only the line terminator
// ("\n" or "\r\n") is dropped; every other character maps 1:1 to a cell.
func ReadGrid(ctx context.Context, r io.Reader) (*domain.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]rune
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows = append(rows, []rune(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading schematic: %w", err)
	}

	return domain.NewGrid(rows), nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
