package main

import (
	cmd "github.com/security-tools/burp-control/cmd/burpcontrol"
)

func main() {
	cmd.Execute()
}
