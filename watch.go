package main

import (
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ztrue/tracerr"

	"github.com/fetttttjoe/Compiler/config"
)

// fileWatcher reports changes to one file. It watches the parent directory so
// that saves which rename a temporary file over the original are seen too.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, tracerr.Errorf("nothing to watch: %s does not exist, pass a source file or set source in the manifest", path)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, tracerr.Wrap(err)
	}

	return &fileWatcher{w: w, path: filepath.Clean(path)}, nil
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}

// Run calls changed after every write to the file, or a rename or create that
// puts a new file at its path, until stop is closed.
func (fw *fileWatcher) Run(stop <-chan struct{}, changed func()) error {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				plog.Infof("%s changed", ev.Name)
				changed()
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			plog.Error(err)
		case <-stop:
			return nil
		}
	}
}

// watch runs check on path once and again after every save, until interrupted.
func watch(m config.Module, path string) error {
	fw, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	defer fw.Close()

	run := func() {
		if err := check(m, path); err != nil {
			tracerr.PrintSourceColor(err)
		}
	}
	run()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	stop := make(chan struct{})
	go func() {
		<-interrupt
		close(stop)
	}()

	return fw.Run(stop, run)
}
