package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/vinser/presents/internal/app"
	"github.com/vinser/presents/internal/flags"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("presents: ")

	fl, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(1)
	}
	if err := app.Run(fl, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
