package main

import "github.com/Digital-Shane/scene-tidy/internal/cmd"

func main() {
	cmd.Execute()
}
