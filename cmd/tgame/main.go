package main

import (
	"github.com/mcoot/tetrisgame-go/internal/cli"
)

func main() {
	cli.Execute()
}
