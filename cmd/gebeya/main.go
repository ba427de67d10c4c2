// Command gebeya is a terminal client for the group-buying marketplace,
// exercising the SDK end to end: auth, browsing, joining, payments and
// training progress.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		os.Exit(1)
	}
}
