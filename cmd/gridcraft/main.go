package main

import (
	"github.com/gridcraft/gridcraft/pkg/cli"
)

func main() {
	cli.Execute()
}
