package main

import "github.com/vidaemdestaque/entreconsultas/cmd"

func main() {
	cmd.Execute()
}
