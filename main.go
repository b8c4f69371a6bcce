package main

import (
	"fmt"
	"os"

	"loan-calculator/cli"
)

func main() {
	app := cli.NewCLI(cli.Options{Output: os.Stdout})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
