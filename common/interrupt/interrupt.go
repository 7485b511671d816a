// Package interrupt wires process signals into context cancellation so a
// long-running driver can wind down a stream cleanly.
package interrupt

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/txledger/txengine/common"
)

// ErrCanceled is an error constant for reporting a cancellation caused by
// an interrupt signal; no function in this package returns it.
const ErrCanceled = common.ConstError("interrupted")

// IsCancelled returns true if ctx's Done channel has already fired.
func IsCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// CancelOnInterrupt returns a child of parent that is cancelled as soon as
// the process receives SIGINT or SIGTERM, so an in-flight stream can finish
// emitting whatever it has already processed instead of being killed mid
// snapshot.
func CancelOnInterrupt(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		defer signal.Stop(c)
		select {
		case <-c:
			log.Println("interrupted, finishing current record before shutdown")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}
