package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long to wait after the last change before re-rendering.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// watch re-renders whenever the project or data file changes, until ctx
// is done. Parent directories are watched so files replaced by rename are
// still seen.
func (p *previewer) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	projectFile, err := filepath.Abs(p.projectPath)
	if err != nil {
		return err
	}
	files := map[string]bool{projectFile: true}
	if p.dataPath != "" {
		dataFile, err := filepath.Abs(p.dataPath)
		if err != nil {
			return err
		}
		files[dataFile] = true
	}

	dirs := make(map[string]bool)
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	p.log.Info("watching for changes", "project", p.projectPath, "data", p.dataPath)

	var (
		timer          <-chan time.Time
		projectChanged bool
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if !files[name] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if name == projectFile {
				projectChanged = true
			}
			timer = time.After(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.log.Warn("watch error", "err", err)
		case <-timer:
			timer = nil
			// Styles may have been edited without a new modification
			// time, so cached bitmaps can't be trusted.
			if projectChanged {
				p.cache.Clear()
				projectChanged = false
			}
			if err := p.render(); err != nil {
				p.log.Error("render failed", "err", err)
			}
		}
	}
}
