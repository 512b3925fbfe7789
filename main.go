package main

import "github.com/alexiusacademia/goroark/cmd"

func main() {
	cmd.Execute()
}
