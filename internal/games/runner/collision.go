package runner

import "github.com/vovakirdan/block-runner/internal/core"

// Layout is the render collaborator's bounding-box query.
// Boxes describe rendered geometry, not raw simulation values.
type Layout interface {
	PlayerBox(height float64) core.Box
	ObstacleBox(o Obstacle) core.Box
}

// Overlaps tests two boxes after shrinking both by margin on every side.
// Touching edges do not overlap.
func Overlaps(player, obstacle core.Box, margin float64) bool {
	p, o := player.Inset(margin), obstacle.Inset(margin)
	return p.Right > o.Left && p.Left < o.Right && p.Bottom > o.Top && p.Top < o.Bottom
}

// Collides returns the index of the first obstacle box overlapping the
// player. Remaining boxes are not tested once a hit is found.
func Collides(player core.Box, obstacles []core.Box, margin float64) (int, bool) {
	for i, b := range obstacles {
		if Overlaps(player, b, margin) {
			return i, true
		}
	}
	return -1, false
}

// firstHit runs collision for the live obstacles through the layout.
func firstHit(l Layout, st *GameState, margin float64) (Obstacle, bool) {
	boxes := make([]core.Box, len(st.Obstacles))
	for i, o := range st.Obstacles {
		boxes[i] = l.ObstacleBox(o)
	}
	i, hit := Collides(l.PlayerBox(st.PlayerHeight), boxes, margin)
	if !hit {
		return Obstacle{}, false
	}
	return st.Obstacles[i], true
}
