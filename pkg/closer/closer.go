// Package closer обеспечивает упорядоченное освобождение ресурсов при
// завершении приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer накапливает функции закрытия и запускает их в порядке LIFO.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []Func
	names []string
}

func New() *Closer {
	return &Closer{}
}

// Add регистрирует ресурс под человекочитаемым именем для сообщений об ошибках.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
	c.names = append(c.names, name)
}

// Close закрывает зарегистрированные ресурсы в обратном порядке регистрации.
// Ошибки отдельных ресурсов не прерывают закрытие остальных; при отмене
// контекста оставшиеся ресурсы считаются незакрытыми и попадают в ошибку.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs, names := c.funcs, c.names
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				msgs = append(msgs, fmt.Sprintf("[!] %s: not closed: %v", names[i], ctx.Err()))
				continue
			default:
			}

			done := make(chan error, 1)
			go func(f Func) { done <- f(ctx) }(funcs[i])

			select {
			case closeErr := <-done:
				if closeErr != nil {
					msgs = append(msgs, fmt.Sprintf("[!] %s: %v", names[i], closeErr))
				}
			case <-ctx.Done():
				msgs = append(msgs, fmt.Sprintf("[!] %s: timed out", names[i]))
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}
