package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/olimci/cmake-init/cmd"
	"github.com/olimci/cmake-init/pkg/errdef"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cmake-init: %v\n", err)
		stop()
		os.Exit(errdef.ExitCode(err))
	}
}
