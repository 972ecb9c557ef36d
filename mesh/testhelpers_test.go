package mesh

// Minimal, self-contained triangle/fan construction helpers for this
// package's own tests. The real construction API with sentinel-error
// handling lives in the builder package; these exist so mesh's tests do
// not need to import it.

func buildFullEdge(k *Kernel, v0, v1 VertexIndex) EdgeIndex {
	e0 := k.AddEdge(HalfEdgeData{Vertex: v0})
	e1 := k.AddEdge(HalfEdgeData{Vertex: v1, Twin: e0})
	if d, ok := k.GetEdge(e0); ok {
		d.Twin = e1
	}
	if vd, ok := k.GetVertex(v0); ok {
		vd.Edge = e0
	}
	if vd, ok := k.GetVertex(v1); ok {
		vd.Edge = e1
	}

	return e0
}

func buildFullEdgeFrom(k *Kernel, prev EdgeIndex, v1 VertexIndex) EdgeIndex {
	prevData, _ := k.GetEdge(prev)
	twinData, _ := k.GetEdge(prevData.Twin)
	e0 := buildFullEdge(k, twinData.Vertex, v1)
	connectEdges(k, prev, e0)

	return e0
}

func closeEdgeLoop(k *Kernel, prev, next EdgeIndex) EdgeIndex {
	prevData, _ := k.GetEdge(prev)
	twinData, _ := k.GetEdge(prevData.Twin)
	nextData, _ := k.GetEdge(next)
	e0 := buildFullEdge(k, twinData.Vertex, nextData.Vertex)
	connectEdges(k, prev, e0)
	connectEdges(k, e0, next)

	return e0
}

func connectEdges(k *Kernel, prev, next EdgeIndex) {
	if p, ok := k.GetEdge(prev); ok {
		p.Next = next
	}
	if n, ok := k.GetEdge(next); ok {
		n.Prev = prev
	}
}

func assignFaceToLoop(k *Kernel, root EdgeIndex, face FaceIndex) {
	if f, ok := k.GetFace(face); ok {
		f.Edge = root
	}

	current := root
	for {
		e, ok := k.GetEdge(current)
		if !ok {
			break
		}
		if e.Face == face {
			break
		}
		e.Face = face
		if e.Next == root || !e.Next.IsValid() {
			break
		}
		current = e.Next
	}
}

func twin(k *Kernel, e EdgeIndex) EdgeIndex {
	d, _ := k.GetEdge(e)

	return d.Twin
}

// buildTriangle constructs a single triangular face from three fresh
// points, wiring the six half-edges (three boundary twins, three in the
// face loop) the way a real builder would.
func buildTriangle(k *Kernel, p0, p1, p2 Position) (FaceIndex, [3]VertexIndex, [3]EdgeIndex) {
	pt0 := k.AddPoint(PointData{Position: p0})
	pt1 := k.AddPoint(PointData{Position: p1})
	pt2 := k.AddPoint(PointData{Position: p2})

	v0 := k.AddVertex(VertexData{Point: pt0})
	v1 := k.AddVertex(VertexData{Point: pt1})
	v2 := k.AddVertex(VertexData{Point: pt2})

	e0 := buildFullEdge(k, v0, v1)
	e2 := buildFullEdgeFrom(k, e0, v2)
	e4 := closeEdgeLoop(k, e2, e0)

	face := k.AddFace(FaceData{})
	assignFaceToLoop(k, e0, face)

	return face, [3]VertexIndex{v0, v1, v2}, [3]EdgeIndex{e0, e2, e4}
}

// buildFan constructs n triangles sharing a single central vertex, the way
// a triangle fan around a point is built incrementally: each new triangle
// reuses the previous triangle's outward edge as its own first spoke via a
// shared twin, so the whole fan circulates around the center.
func buildFan(k *Kernel, n int) (center VertexIndex, faces []FaceIndex) {
	centerPoint := k.AddPoint(PointData{Position: Position{0, 0, 0}})
	center = k.AddVertex(VertexData{Point: centerPoint})

	rim := make([]VertexIndex, n)
	for i := 0; i < n; i++ {
		p := k.AddPoint(PointData{Position: Position{float32(i), 1, 0}})
		rim[i] = k.AddVertex(VertexData{Point: p})
	}

	spokes := make([]EdgeIndex, n) // spoke[i]: center -> rim[i]
	for i := 0; i < n; i++ {
		spokes[i] = buildFullEdge(k, center, rim[i])
	}

	faces = make([]FaceIndex, n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		rimEdge := buildFullEdge(k, rim[i], rim[next])
		closing := twin(k, spokes[next]) // rim[next] -> center, shared with triangle `next`

		connectEdges(k, spokes[i], rimEdge)
		connectEdges(k, rimEdge, closing)
		connectEdges(k, closing, spokes[i])

		face := k.AddFace(FaceData{})
		assignFaceToLoop(k, spokes[i], face)
		faces[i] = face
	}

	return center, faces
}
