package main

import (
	"context"
	"fmt"
	"os"

	"github.com/backbar/barcost/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "barcost: %v\n", err)
		os.Exit(1)
	}
}
