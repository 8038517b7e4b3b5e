package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/milk9111/bombsim/logger"
	"github.com/sirupsen/logrus"
)

// settle is how long a section file must go untouched before it is reread.
const settle = 150 * time.Millisecond

// Change is a section file rewritten on disk. File is set when the new
// content parsed, Err otherwise.
type Change struct {
	Name string
	Path string
	File *File
	Err  error
}

// Watcher rereads section files as they are edited. The bursts of writes an
// editor makes on save fold into a single Change, sent once the file has
// settled.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change

	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	log     *logrus.Entry
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("levels: watch: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("levels: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fw,
		Changes: make(chan Change, 8),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		log:     logger.Log.WithField("component", "watcher"),
	}
	go w.run()
	return w, nil
}

// Close stops watching. Changes is closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		<-w.stopped
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.stopped)
	defer close(w.Changes)

	touched := make(map[string]time.Time)
	tick := time.NewTicker(settle / 3)
	defer tick.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !isSectionFile(ev.Name) {
				continue
			}
			touched[ev.Name] = time.Now()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch failed")
		case now := <-tick.C:
			for path, at := range touched {
				if now.Sub(at) < settle {
					continue
				}
				delete(touched, path)
				c := reread(path)
				w.log.WithFields(logrus.Fields{"section": c.Name, "ok": c.Err == nil}).Debug("section changed")
				select {
				case w.Changes <- c:
				case <-w.done:
					return
				}
			}
		case <-w.done:
			return
		}
	}
}

func reread(path string) Change {
	c := Change{Name: sectionName(path), Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		c.Err = fmt.Errorf("levels: reread %s: %w", c.Name, err)
		return c
	}
	if c.File, err = Parse(data); err != nil {
		c.Err = fmt.Errorf("levels: reread %s: %w", c.Name, err)
	}
	return c
}

func sectionName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isSectionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
