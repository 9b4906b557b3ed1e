package catalog

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const reloadQuiet = 250 * time.Millisecond

// Watcher recarga el catálogo cuando cambia el YAML externo. Los eventos
// rápidos (editores que escriben varias veces) se coalescen con el
// debouncer; si el archivo nuevo no valida se conserva el snapshot
// anterior.
type Watcher struct {
	path   string
	cat    *Catalog
	fsw    *fsnotify.Watcher
	deb    *Debouncer
	doneCh chan struct{}
}

// Watch vigila path y recarga cat ante cada cambio estabilizado.
func Watch(path string, cat *Catalog) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// se vigila el directorio: los editores suelen reemplazar el archivo
	// (rename), lo que rompería el watch directo
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w := &Watcher{
		path:   path,
		cat:    cat,
		fsw:    fsw,
		deb:    NewDebouncer(reloadQuiet),
		doneCh: make(chan struct{}),
	}
	go w.run()
	log.Info().Str("path", path).Msg("catalog watch iniciado")
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.deb.Trigger(w.reload)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("catalog watch")
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("catalog reload: lectura")
		return
	}
	products, err := parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("catalog reload: se mantiene el snapshot anterior")
		return
	}
	w.cat.replace(products)
	log.Info().Int("products", len(products)).Msg("catalog recargado")
}

// Close detiene el watch y descarta cualquier recarga pendiente.
func (w *Watcher) Close() error {
	w.deb.Stop()
	err := w.fsw.Close()
	<-w.doneCh
	return err
}
