package builder

import "github.com/photex-labs/hedgekernel/mesh"

// MethodGrid names NewGrid for error-context wrapping.
const MethodGrid = "NewGrid"

// NewGrid builds a regular (rows+1) x (cols+1) point quad mesh: rows*cols
// quad faces tiling a rectangle, each interior edge shared between its two
// bordering faces and each boundary edge's twin left faceless. Vertices
// are laid out row-major, so vertex index r*(cols+1) + c sits at grid
// position (r, c).
//
// It returns every vertex (row-major, (rows+1)*(cols+1) of them) and every
// face (row-major, rows*cols of them) it created.
func NewGrid(k *mesh.Kernel, rows, cols int, opts ...GridOption) ([]mesh.VertexIndex, []mesh.FaceIndex, error) {
	if rows < 1 {
		return nil, nil, builderErrorf(MethodGrid, ErrTooFewRows)
	}
	if cols < 1 {
		return nil, nil, builderErrorf(MethodGrid, ErrTooFewCols)
	}

	cfg := newGridConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pointRows, pointCols := rows+1, cols+1
	idx := func(r, c int) int { return r*pointCols + c }

	verts := make([]mesh.VertexIndex, pointRows*pointCols)
	for r := 0; r < pointRows; r++ {
		for c := 0; c < pointCols; c++ {
			pos := mesh.Position{
				cfg.origin[0] + float32(c)*cfg.spacing,
				cfg.origin[1] + float32(r)*cfg.spacing,
				cfg.origin[2],
			}
			p := k.AddPoint(mesh.PointData{Position: pos})
			verts[idx(r, c)] = k.AddVertex(mesh.VertexData{Point: p})
		}
	}

	// edgeCache remembers both directions of every edge built so far: the
	// cell that reaches a shared boundary first builds the twinned pair,
	// the neighboring cell on the other side reuses the cached reverse
	// handle instead of building a duplicate.
	type edgeKey struct{ from, to int }
	edgeCache := make(map[edgeKey]mesh.EdgeIndex)

	getEdge := func(from, to int) (mesh.EdgeIndex, error) {
		if e, ok := edgeCache[edgeKey{from, to}]; ok {
			return e, nil
		}

		e0, err := BuildFullEdge(k, verts[from], verts[to])
		if err != nil {
			return mesh.EdgeIndex{}, builderErrorf(MethodGrid, err)
		}
		d, _ := k.GetEdge(e0)
		edgeCache[edgeKey{from, to}] = e0
		edgeCache[edgeKey{to, from}] = d.Twin

		return e0, nil
	}

	faces := make([]mesh.FaceIndex, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v00, v01, v11, v10 := idx(r, c), idx(r, c+1), idx(r+1, c+1), idx(r+1, c)

			top, err := getEdge(v00, v01)
			if err != nil {
				return nil, nil, err
			}
			right, err := getEdge(v01, v11)
			if err != nil {
				return nil, nil, err
			}
			bottom, err := getEdge(v11, v10)
			if err != nil {
				return nil, nil, err
			}
			left, err := getEdge(v10, v00)
			if err != nil {
				return nil, nil, err
			}

			for _, pair := range [][2]mesh.EdgeIndex{{top, right}, {right, bottom}, {bottom, left}, {left, top}} {
				if err := ConnectEdges(k, pair[0], pair[1]); err != nil {
					return nil, nil, err
				}
			}

			face := k.AddFace(mesh.FaceData{})
			if err := AssignFaceToLoop(k, top, face); err != nil {
				return nil, nil, err
			}
			faces = append(faces, face)
		}
	}

	return verts, faces, nil
}
