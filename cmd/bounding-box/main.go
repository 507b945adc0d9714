package main

import "github.com/ironsheep/bounding-box/internal/cli"

func main() {
	cli.Execute()
}
