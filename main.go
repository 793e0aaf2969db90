package main

import "github.com/KaramelBytes/tpdash-cli/cmd"

func main() {
	cmd.Execute()
}
