package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/fx"
)

const stopTimeout = 15 * time.Second

type application interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Wait() <-chan fx.ShutdownSignal
}

// run starts app, blocks until ctx is cancelled or the app asks to shut down
// and returns the process exit code.
func run(ctx context.Context, app application, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start shopdash: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop shopdash: %v\n", err)
		return 1
	}
	return code
}
