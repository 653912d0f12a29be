package main

import (
	"github.com/gmsh41/meshparser/cmd/gmshinfo"
)

func main() {
	gmshinfo.Execute()
}
