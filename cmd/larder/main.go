package main

import (
	"github.com/larderhq/larder/pkg/cli"
)

func main() {
	cli.Execute()
}
