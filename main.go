package main

import (
	"os"

	"github.com/spigell/applicant-filter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
