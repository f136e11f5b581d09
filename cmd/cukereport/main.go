package main

import (
	"fmt"
	"os"

	cerrors "github.com/bgricker/cukereport/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cerrors.ExitCode(err))
	}
}
