package main

import "wowsync/cmd"

func main() {
	cmd.Execute()
}
