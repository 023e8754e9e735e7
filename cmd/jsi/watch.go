package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file for changes. It watches the parent directory so that
// editors replacing the file by a rename are picked up as well.
type Watcher struct {
	watcher *fsnotify.Watcher
	file    string
}

// NewWatcher returns a new Watcher for the given file.
func NewWatcher(file string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	file = filepath.Clean(file)
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		watcher.Close()
		return nil, err
	}
	return &Watcher{watcher, file}, nil
}

// Close closes the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run watches for changes and sends the file name for every write or recreation of the file.
// The returned channel is closed when the watcher is closed.
func (w *Watcher) Run() chan string {
	files := make(chan string, 10)
	go func() {
		var changetime time.Time
		for w.watcher.Events != nil && w.watcher.Errors != nil {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					w.watcher.Events = nil
					break
				}
				if filepath.Clean(event.Name) != w.file {
					break
				}

				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					if 100*time.Millisecond < time.Since(changetime) {
						time.Sleep(100 * time.Millisecond) // wait to make sure write is finished
						files <- w.file
						changetime = time.Now()
					}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					w.watcher.Errors = nil
					break
				}
				Error.Println(err)
			}
		}
		close(files)
	}()
	return files
}
