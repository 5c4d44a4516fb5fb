package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := getRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "fishstats:", err)
		os.Exit(1)
	}
}
