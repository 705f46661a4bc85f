package main

import "github.com/alexiusacademia/gocoiler/cmd"

func main() {
	cmd.Execute()
}
