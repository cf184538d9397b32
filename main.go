package main

import "github.com/smartcontractkit/scaffold/cmd"

func main() {
	cmd.Execute()
}
