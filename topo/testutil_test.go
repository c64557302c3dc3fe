package topo_test

import (
	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/topo"
)

// lineEdge builds a straight edge between fresh vertices at a and b.
func lineEdge(a, b geom.Point3) topo.Edge {
	return topo.NewEdge(topo.NewVertex(a), topo.NewVertex(b), geom.Line{A: a, B: b})
}

// lineBetween builds a straight edge between existing vertices.
func lineBetween(v0, v1 *topo.Vertex) topo.Edge {
	return topo.NewEdge(v0, v1, geom.Line{A: v0.Point(), B: v1.Point()})
}

// closedTriangle builds a closed three-edge wire over fresh vertices.
func closedTriangle(a, b, c geom.Point3) topo.Wire {
	va, vb, vc := topo.NewVertex(a), topo.NewVertex(b), topo.NewVertex(c)

	return topo.NewWire(lineBetween(va, vb), lineBetween(vb, vc), lineBetween(vc, va))
}
