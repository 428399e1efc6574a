package main

import (
	"os"

	"github.com/cristianoliveira/segbar/cmd"
	"github.com/cristianoliveira/segbar/internal/colors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		colors.Error(err.Error())
		os.Exit(1)
	}
}
