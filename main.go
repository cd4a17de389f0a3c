package main

import (
	"os"

	"github.com/archit-tiwari-26/timetable3.0/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
