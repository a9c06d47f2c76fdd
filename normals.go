package parallel

// Normals returns the unit left-hand normal of every segment of pts:
// (-dy/L, dx/L) for the segment direction (dx, dy) of length L.
// A zero-length segment yields a *DegenerateSegmentError.
func Normals(pts []Point) ([]Vec2, error) {
	if len(pts) < 2 {
		return nil, nil
	}
	normals := make([]Vec2, len(pts)-1)
	for i := range normals {
		dir := pts[i+1].Sub(pts[i])
		l := dir.Length()
		if l == 0 {
			return nil, &DegenerateSegmentError{Index: i, At: pts[i]}
		}
		normals[i] = dir.Perp().Mul(1 / l)
	}
	return normals, nil
}
