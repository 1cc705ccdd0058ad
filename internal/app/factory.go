package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/tphakala/vowelnet/internal/conf"
)

// Factory returns the App for the running command, building it on first use.
type Factory func() (*App, error)

// AnnotationEmptyStore marks a command whose App starts with an empty store
// instead of the configured dataset file.
const AnnotationEmptyStore = "vowelnet/empty-store"

// Lazy builds one App from load on first use and reuses it afterwards.
type Lazy struct {
	load func() (*conf.Settings, error)
	opts Options

	mu  sync.Mutex
	app *App
}

// NewLazy returns a Lazy that reads settings with load.
func NewLazy(load func() (*conf.Settings, error), opts Options) *Lazy {
	return &Lazy{load: load, opts: opts}
}

// SetOut directs the user-facing output of an App built later to w.
func (l *Lazy) SetOut(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.Out = w
}

// Get returns the App, building it if needed. A new App loads the configured
// dataset file when it exists.
func (l *Lazy) Get() (*App, error) {
	return l.get(true)
}

// GetEmpty returns the App, building it with an empty store if needed.
func (l *Lazy) GetEmpty() (*App, error) {
	return l.get(false)
}

func (l *Lazy) get(loadDefault bool) (*App, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.app != nil {
		return l.app, nil
	}

	settings, err := l.load()
	if err != nil {
		return nil, err
	}
	a, err := New(settings, l.opts)
	if err != nil {
		return nil, err
	}
	if loadDefault {
		if err := a.LoadDefault(); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	l.app = a
	return a, nil
}

// Close closes the App if one was built.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.app == nil {
		return nil
	}
	err := l.app.Close()
	l.app = nil
	return err
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM. Realtime
// runs use it so an interrupt ends the run, not the process.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
