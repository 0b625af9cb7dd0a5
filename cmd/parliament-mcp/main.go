package main

import "github.com/openparl/parliament-mcp/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
