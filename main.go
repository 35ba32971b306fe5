package main

import (
	"log"

	"github.com/eurocv/eurocv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
