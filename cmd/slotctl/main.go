package main

import "github.com/m04kA/SMC-ContainerSlots/internal/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
