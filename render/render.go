package render

import (
	"bytes"
	"html/template"
	"log/slog"
	"path/filepath"
	"sync"

	"frontdoor/internal/errors"
	"frontdoor/internal/watcher"
)

// Renderer loads page templates from a directory and renders them by name.
// Parsed templates are cached until Invalidate is called.
type Renderer struct {
	dir    string
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*template.Template

	watcher *watcher.Watcher
}

// NewRenderer creates a renderer for templates stored in dir
func NewRenderer(dir string, logger *slog.Logger) *Renderer {
	return &Renderer{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*template.Template),
	}
}

// Dir returns the template directory
func (r *Renderer) Dir() string {
	return r.dir
}

// Render executes the named template with data and returns the output.
// Nothing is returned on failure so callers never emit a partial page.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.NewTemplateError("execute_template", err).WithContext("template", name)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	tmpl, err := template.ParseFiles(filepath.Join(r.dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, errors.NewTemplateError("load_template", err).WithContext("template", name)
	}
	r.cache[name] = tmpl
	r.logger.Debug("Template loaded", slog.String("template", name), slog.String("dir", r.dir))
	return tmpl, nil
}

// Invalidate drops every cached template so the next render re-reads from disk
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string]*template.Template)
	r.mu.Unlock()
}

// EnableAutoReload watches the template directory and invalidates the cache on change
func (r *Renderer) EnableAutoReload() error {
	w, err := watcher.New(r.logger)
	if err != nil {
		return errors.NewTemplateError("create_watcher", err)
	}

	if err := w.Watch(r.dir, func(path string) {
		r.logger.Info("Reloading templates", slog.String("changed", path))
		r.Invalidate()
	}); err != nil {
		w.Stop()
		return errors.NewTemplateError("watch_templates", err).WithContext("dir", r.dir)
	}

	r.mu.Lock()
	r.watcher = w
	r.mu.Unlock()
	return nil
}

// Close stops template watching if enabled
func (r *Renderer) Close() error {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	r.mu.Unlock()

	if w != nil {
		return w.Stop()
	}
	return nil
}
