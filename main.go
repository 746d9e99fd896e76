package main

import "github.com/markb/migrename/cmd"

func main() {
	cmd.Execute()
}
