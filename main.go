package main

import "github.com/Varstahl/GOG-Galaxy-HTML5-exporter/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
