package main

import (
	"log"
	"os"

	"github.com/globgrep/globgrep/internal/globgrep"
)

func main() {
	status, err := globgrep.Main()
	if err != nil {
		log.Printf("error: %v", err)
	}
	os.Exit(status)
}
