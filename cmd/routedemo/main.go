// Command routedemo builds a small routing graph, connects two nets
// across it, and prints the resulting wire geometry.
//
// Scenario: three pads on a 10x6 grid, one rectangular obstacle sitting
// between the bottom pads.
//
//	(0,6)                    (10,6)
//	  C                        |
//	  |          +----+        |
//	  |          |ob..|        |
//	  A----------+----+--------B
//	(0,0)                    (10,0)
//
// Net 1 connects A-B (detours around the obstacle). Net 2 connects
// A-C-B as a single three-terminal net sharing wire at whichever node
// the tree reaches first.
package main

import (
	"log"

	"github.com/ortholayer/gridroute"
	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/netroute"
	"github.com/ortholayer/gridroute/rgraph"
)

func main() {
	engine := gridroute.NewEngine()
	if status, err := engine.InitThreadPool(4); err != nil {
		log.Fatalf("routedemo: init thread pool: %v (%s)", err, status)
	}

	handle := engine.GraphNew()
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 10, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 0, Y: 6}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	obstacle := geom.BoundingBox{Center: geom.Point{X: 5, Y: 0}, HalfWidth: 2, HalfHeight: 2}

	if status, err := handle.Build(anchors, []geom.BoundingBox{obstacle}, rgraph.WithMinimal()); err != nil {
		log.Fatalf("routedemo: build graph: %v (%s)", err, status)
	}
	log.Printf("routedemo: built graph %s", handle.ID())

	nets := []netroute.Net{
		{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 6}, {X: 10, Y: 0}}},
	}

	// Sized generously: this demo's graph is tiny, so a handful of
	// bends per net never comes close to these capacities.
	vertices := make([]netroute.Vertex, 64)
	wireViews := make([]netroute.WireView, 64)
	netViews := make([]netroute.NetView, len(nets))

	status, err := handle.ConnectNets(engine, nets, vertices, wireViews, netViews, netroute.WithCentering())
	if err != nil {
		log.Fatalf("routedemo: connect nets: %v (%s)", err, status)
	}

	for i, nv := range netViews {
		log.Printf("net %d: %d wire(s)", i, nv.WireCount)
		vi := nv.VertexOffset
		for wi := uint32(0); wi < nv.WireCount; wi++ {
			w := wireViews[nv.WireOffset+wi]
			vs := vertices[vi : vi+uint32(w.VertexCount())]
			vi += uint32(w.VertexCount())
			log.Printf("  wire %d: root=%v junction=%v vertices=%v", wi, w.IsRoot(), w.EndsInJunction(), vs)
		}
	}

	handle.Free()
}
