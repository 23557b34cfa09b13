package main

import "github.com/trajopt/collo/cmd"

func main() {
	cmd.Execute()
}
