package main

import "ucsbapi/cmd/ucsbctl/cmd"

func main() {
	cmd.Execute()
}
