package main

import (
	"github.com/sorteoplay/minigames-go/internal/cli"
)

func main() {
	cli.Execute()
}
