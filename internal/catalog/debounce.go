package catalog

import (
	"sync"
	"time"
)

// Debouncer difiere una función hasta que pase un período de silencio.
// Cada Trigger descarta el disparo pendiente anterior: a lo sumo hay una
// ejecución en vuelo por ventana, las llamadas superadas no se encolan.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger programa fn para después del período de silencio, cancelando
// cualquier disparo pendiente.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancela el disparo pendiente, si lo hay.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
