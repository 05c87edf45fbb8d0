package main

import "github.com/carson-networks/finance-inspector/cmd"

func main() {
	cmd.Execute()
}
