package main

import (
	"fmt"
	"os"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/cli"
)

func main() {
	// The app container is built lazily by the command that needs it,
	// so --help and "config" never prompt for the database key
	err := cli.Execute()
	if closeErr := cli.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
