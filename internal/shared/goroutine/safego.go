// Package goroutine runs background work with panic recovery.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// SafeGo launches fn in a goroutine. A panic is logged with its stack
// instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name)
		fn()
	}()
}

// BestEffort runs every task concurrently and waits for all of them. Errors
// and panics are logged under name and never returned; one failing task does
// not cancel the others.
func BestEffort(ctx context.Context, log logger.Interface, name string, tasks ...func(ctx context.Context) error) {
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			defer recoverAndLog(log, name)
			if err := task(ctx); err != nil {
				log.Errorw("best-effort task failed", "task", name, "index", i, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func recoverAndLog(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
