package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/navigator/engine/core"
)

// Watcher reloads a configuration file whenever it changes on disk.
// Successfully parsed configurations are published on Updates, failures on Errors.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher

	updates chan *Config
	errors  chan error
	done    chan struct{}

	mutex    sync.Mutex
	isClosed bool
	wg       sync.WaitGroup
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		updates:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("config watcher already closed")
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	err := w.fsnotify.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("config reload failed: %v", err)
				w.publishError(err)
				continue
			}
			core.LogInfo("config reloaded from %s", w.path)
			w.publish(cfg)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			w.publishError(err)
		case <-w.done:
			return
		}
	}
}

// publish keeps only the newest configuration if the consumer is behind.
func (w *Watcher) publish(cfg *Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		case <-w.done:
			return
		default:
			select {
			case <-w.updates:
			default:
			}
		}
	}
}

func (w *Watcher) publishError(err error) {
	select {
	case w.errors <- err:
	default:
		core.LogError("config watcher: dropped error %v", err)
	}
}
