package main

import (
	"fmt"
	"os"

	"github.com/srclink/srclink/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "srclink:", err)
		os.Exit(cli.ExitCode(err))
	}
}
