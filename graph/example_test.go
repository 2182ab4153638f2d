// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/graph"
	"github.com/katalvlaran/lvmesh/mutation"
)

// ExampleGraph_Triangulate builds a square and splits it into two triangles.
func ExampleGraph_Triangulate() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	g := graph.New[string, struct{}, struct{}, struct{}](graph.WithLogger(logger))

	_, err := g.Mutate(func(m *mutation.Mutation[string, struct{}, struct{}, struct{}]) error {
		keys := []core.VertexKey{m.InsertVertex("A"), m.InsertVertex("B"), m.InsertVertex("D"), m.InsertVertex("C")}
		cache, err := mutation.SnapshotFaceInsert[string, struct{}, struct{}, struct{}](m, keys, struct{}{})
		if err != nil {
			return err
		}
		_, err = m.InsertFace(cache)
		return err
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("before: %d face, %d edges\n", g.FaceCount(), g.EdgeCount())

	added, _ := g.Triangulate()
	fmt.Printf("after:  %d faces, %d edges (+%d)\n", g.FaceCount(), g.EdgeCount(), added)

	// Output:
	// before: 1 face, 4 edges
	// after:  2 faces, 5 edges (+1)
}
