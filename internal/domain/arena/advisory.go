package arena

// Distances measures, for each direction in N/E/S/W order, how far the player
// at pos can see before a wall or a cyborg. An unobstructed ray counts the
// cells up to the edge.
func Distances(a *Arena, pos Position) [NumDirections]int {
	var out [NumDirections]int
	for d := North; d <= West; d++ {
		steps := 0
		for p := pos.Step(d); a.grid.InBounds(p); p = p.Step(d) {
			steps++
			if a.grid.walls.Has(p) || a.NumberOfCyborgsAt(p.Row, p.Col) > 0 {
				break
			}
		}
		out[d] = steps
	}
	return out
}

// RecommendMove suggests the most open direction from pos. It reports false
// when every direction is equally open.
func RecommendMove(a *Arena, pos Position) (Direction, bool) {
	if a == nil || !a.grid.InBounds(pos) {
		return 0, false
	}
	dist := Distances(a, pos)
	if dist[North] == dist[East] && dist[North] == dist[South] && dist[North] == dist[West] {
		return 0, false
	}
	best := North
	for d := East; d <= West; d++ {
		if dist[d] > dist[best] {
			best = d
		}
	}
	return best, true
}
