package nav

import "github.com/udisondev/gridnav/internal/model"

// CompressPath drops interior waypoints that continue in the same
// direction as their predecessor, keeping only turns and endpoints.
// The compressed path traverses exactly the same cells when re-expanded
// segment by segment, so 4-directional validity is preserved. Intended
// for callers forwarding waypoints to rendering or replication.
func CompressPath(path []model.Position) []model.Position {
	if len(path) <= 2 {
		return path
	}

	out := make([]model.Position, 0, len(path))
	out = append(out, path[0])

	for i := 1; i < len(path)-1; i++ {
		prev := path[i-1]
		cur := path[i]
		next := path[i+1]

		sameDir := (cur.X-prev.X) == (next.X-cur.X) && (cur.Y-prev.Y) == (next.Y-cur.Y)
		if sameDir {
			continue
		}
		out = append(out, cur)
	}

	out = append(out, path[len(path)-1])
	return out
}
