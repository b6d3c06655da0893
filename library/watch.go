package library

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the fallback watcher re-scans the directory
// when fsnotify is unavailable.
const pollInterval = 500 * time.Millisecond

// Event reports a change to a section file in a watched library.
type Event struct {
	// Path is the file that changed.
	Path string
}

// Watch reports changes to section files in the library directory until
// the context is cancelled. It uses fsnotify where available, falling
// back to polling otherwise. The returned channel is closed when
// watching stops.
//
// The library's loaded entries are a snapshot; on an event, callers
// re-Load and rebuild their prompt.
func (l *Library) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		go l.watchPolling(ctx, ch)
		return ch, nil
	}
	if err := watcher.Add(l.dir); err != nil {
		watcher.Close()
		go l.watchPolling(ctx, ch)
		return ch, nil
	}

	go l.watchFsnotify(ctx, ch, watcher)
	return ch, nil
}

// watchFsnotify forwards write/create/remove events for .md files.
func (l *Library) watchFsnotify(ctx context.Context, ch chan<- Event, watcher *fsnotify.Watcher) {
	defer close(ch)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".md" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			select {
			case ch <- Event{Path: event.Name}:
			case <-ctx.Done():
				return
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are usually recoverable; keep going.
		}
	}
}

// watchPolling re-scans modification times when fsnotify isn't available.
func (l *Library) watchPolling(ctx context.Context, ch chan<- Event) {
	defer close(ch)

	mtimes := l.scanModTimes()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			current := l.scanModTimes()
			for path, mtime := range current {
				if prev, ok := mtimes[path]; !ok || !prev.Equal(mtime) {
					select {
					case ch <- Event{Path: path}:
					case <-ctx.Done():
						return
					}
				}
			}
			for path := range mtimes {
				if _, ok := current[path]; !ok {
					select {
					case ch <- Event{Path: path}:
					case <-ctx.Done():
						return
					}
				}
			}
			mtimes = current
		}
	}
}

// scanModTimes records the modification time of every .md file in the
// library directory.
func (l *Library) scanModTimes() map[string]time.Time {
	mtimes := make(map[string]time.Time)
	files, err := filepath.Glob(filepath.Join(l.dir, "*.md"))
	if err != nil {
		return mtimes
	}
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mtimes[path] = info.ModTime()
	}
	return mtimes
}
