package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/qmap/bfs"
	"github.com/katalvlaran/qmap/builder"
)

// ExampleShortestPath finds the hop path between two leaves of a star:
// every leaf-to-leaf route passes through the center.
func ExampleShortestPath() {
	star, err := builder.StarTopology(5, 2)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	path, err := bfs.ShortestPath(star, 0, 4)
	if err != nil {
		fmt.Println("path:", err)
		return
	}
	fmt.Println(path)
	// Output: [0 2 4]
}
