package grid

// Orientations returns every distinct orientation of s reachable by
// composing an optional reflection with quarter turns. At most 8 come
// out; piece symmetry collapses duplicates. Order is first-seen: the
// seed and its rotations, then whatever the reflected side adds.
func Orientations(s Shape) []Shape {
	seen := make(map[string]struct{}, 8)
	var out []Shape
	for _, base := range []Shape{s, s.Reflect()} {
		q := base
		for range 4 {
			if _, ok := seen[q.Key()]; !ok {
				seen[q.Key()] = struct{}{}
				out = append(out, q)
			}
			q = q.Rotate()
		}
	}
	return out
}
