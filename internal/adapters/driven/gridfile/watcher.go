package gridfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/gearscan/internal/core/ports/driven"
	"github.com/custodia-labs/gearscan/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.GridWatcher = (*Watcher)(nil)

// Watcher reports writes to a schematic file.
type Watcher struct {
	loader *Loader
}

// NewWatcher creates a watcher that resolves paths the same way loader does.
func NewWatcher(loader *Loader) *Watcher {
	return &Watcher{loader: loader}
}

// Watch calls onChange whenever the file at path is written or recreated.
// The parent directory is watched rather than the file itself so editors
// that save by renaming a temporary file over the original are noticed.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	resolved, err := w.loader.Resolve(path)
	if err != nil {
		return err
	}
	target, err := filepath.Abs(resolved)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}
	logger.Debug("Watching directory %s for %s", filepath.Dir(target), filepath.Base(target))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isChange(event, target) {
				continue
			}
			logger.Debug("Change detected: %s", event)
			onChange()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
}

// isChange reports whether event rewrote target.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
