package main

import (
	"log"

	"github.com/larderhq/larder/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
