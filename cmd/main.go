package main

import (
	"os"

	"github.com/weiawesome/zuid/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
