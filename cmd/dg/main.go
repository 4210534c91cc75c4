package main

import "github.com/p119ro/dopelganger/cmd/dg/root"

func main() {
	root.Execute()
}
