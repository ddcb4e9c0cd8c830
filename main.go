package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/abhisek/examgen/cmd"
	"github.com/abhisek/examgen/internal/examerr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(examerr.ExitCode(err))
	}
}
