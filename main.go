package main

import "favorites-tx/cmd"

func main() {
	cmd.Execute()
}
