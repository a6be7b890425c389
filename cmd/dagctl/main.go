package main

import "github.com/LENAX/dag-manager/pkg/cli/cmd"

func main() {
	cmd.Execute()
}
