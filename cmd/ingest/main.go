package main

import (
	"os"

	"github.com/romariotrain/project-media/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
