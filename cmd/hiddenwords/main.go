package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcoot/hiddenwords-go/internal/cli"
)

func main() {
	// Optional .env with HIDDENWORDS_* overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not read .env: %s\n", err)
	}

	cli.Execute()
}
