package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tt "github.com/gnolang/hlin/internal/types"
)

// dump file extensions the watcher reacts to
var watchedExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Watch re-checks dump files under the given directories whenever they
// change, reporting issues through report.
func (e *Engine) Watch(dirs []string, report func(filename string, issues []tt.Issue)) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	e.watcher = w
	e.watchDirs = dirs
	e.report = report

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop()
	return nil
}

// StopWatching closes the watcher and ends the watch loop.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		log.Println("not watching")
		return nil
	}
	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !watchedExtensions[filepath.Ext(event.Name)] {
		return
	}

	// editors often write in bursts; let the file settle
	time.Sleep(100 * time.Millisecond)
	issues, err := e.Run(event.Name)
	if err != nil {
		log.Printf("error re-checking %s: %v", event.Name, err)
		return
	}
	if e.report != nil {
		e.report(event.Name, issues)
	}
}
