// Package search содержит debounce-механизм для поисковых запросов:
// каждый новый запрос отменяет предыдущий, выполнение начинается только
// после паузы ввода.
package search

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay пауза ввода, после которой выполняется запрос
const DefaultDelay = 300 * time.Millisecond

// Debouncer откладывает выполнение функции до паузы между вызовами.
// Новый вызов Do отменяет контекст предыдущего, даже если тот уже выполняется.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	timer  *time.Timer
}

// NewDebouncer создает новый Debouncer с заданной паузой.
// При delay <= 0 используется DefaultDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Do планирует выполнение fn после паузы ввода.
// Предыдущий запланированный или выполняющийся вызов отменяется через его контекст.
func (d *Debouncer) Do(ctx context.Context, fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.timer = time.AfterFunc(d.delay, func() {
		defer cancel()

		select {
		case <-sessionCtx.Done():
			return
		default:
		}

		fn(sessionCtx)
	})
}

// Stop отменяет запланированный и выполняющийся вызовы
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
