package main

import "github.com/Oseltamivir/Amortization-schedule/cmd"

func main() {
	cmd.Execute()
}
