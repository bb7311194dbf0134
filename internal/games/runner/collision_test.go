package runner

import (
	"testing"

	"github.com/vovakirdan/block-runner/internal/core"
)

func TestOverlapsFixtures(t *testing.T) {
	player := core.Box{Left: 100, Right: 150, Top: 0, Bottom: 50}

	tests := []struct {
		name     string
		obstacle core.Box
		margin   float64
		expected bool
	}{
		{
			// The inset player box is zero wide, so an obstacle inside it never hits.
			name:     "obstacle inside degenerate inset",
			obstacle: core.Box{Left: 120, Right: 140, Top: 0, Bottom: 50},
			margin:   25,
			expected: false,
		},
		{
			name:     "enclosing obstacle",
			obstacle: core.Box{Left: 90, Right: 160, Top: -10, Bottom: 60},
			margin:   25,
			expected: true,
		},
		{
			name:     "overlapping obstacle small margin",
			obstacle: core.Box{Left: 120, Right: 140, Top: 0, Bottom: 50},
			margin:   5,
			expected: true,
		},
		{
			name:     "far right obstacle",
			obstacle: core.Box{Left: 300, Right: 320, Top: 0, Bottom: 50},
			margin:   25,
			expected: false,
		},
		{
			name:     "touching edges without margin",
			obstacle: core.Box{Left: 150, Right: 200, Top: 0, Bottom: 50},
			margin:   0,
			expected: false,
		},
		{
			name:     "visual overlap forgiven by margin",
			obstacle: core.Box{Left: 140, Right: 190, Top: 0, Bottom: 50},
			margin:   10,
			expected: false,
		},
		{
			name:     "vertically clear",
			obstacle: core.Box{Left: 110, Right: 140, Top: 60, Bottom: 110},
			margin:   0,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(player, tc.obstacle, tc.margin); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesShortCircuits(t *testing.T) {
	player := core.Box{Left: 100, Right: 150, Top: 0, Bottom: 50}
	boxes := []core.Box{
		{Left: 300, Right: 320, Top: 0, Bottom: 50},
		{Left: 90, Right: 160, Top: -10, Bottom: 60},
		{Left: 80, Right: 170, Top: -20, Bottom: 70},
	}

	idx, hit := Collides(player, boxes, 25)
	if !hit || idx != 1 {
		t.Errorf("Collides() = (%d, %v), expected first hit at index 1", idx, hit)
	}

	if _, hit := Collides(player, boxes[:1], 25); hit {
		t.Error("Collides() should report no hit for a clear track")
	}
	if idx, hit := Collides(player, nil, 25); hit || idx != -1 {
		t.Errorf("Collides(nil) = (%d, %v), expected (-1, false)", idx, hit)
	}
}

// countingLayout counts obstacle box queries.
type countingLayout struct {
	player  core.Box
	boxes   map[int]core.Box
	queried int
}

func (l *countingLayout) PlayerBox(float64) core.Box { return l.player }

func (l *countingLayout) ObstacleBox(o Obstacle) core.Box {
	l.queried++
	return l.boxes[o.ID]
}

func TestFirstHitReturnsFirstOverlap(t *testing.T) {
	l := &countingLayout{
		player: core.Box{Left: 100, Right: 150, Top: 0, Bottom: 50},
		boxes: map[int]core.Box{
			1: {Left: 90, Right: 160, Top: -10, Bottom: 60},
			2: {Left: 90, Right: 160, Top: -10, Bottom: 60},
		},
	}
	st := newGameState(1)
	st.Obstacles = []Obstacle{{ID: 1}, {ID: 2}}

	o, hit := firstHit(l, &st, 25)
	if !hit || o.ID != 1 {
		t.Fatalf("firstHit() = (%+v, %v), expected obstacle 1", o, hit)
	}
	if l.queried != 2 {
		t.Errorf("queried %d obstacle boxes, expected one per obstacle", l.queried)
	}

	st.Obstacles = nil
	if _, hit := firstHit(l, &st, 25); hit {
		t.Error("firstHit() with no obstacles reported a hit")
	}
}

func TestTermLayoutBoxesCollideOnlyNearPlayer(t *testing.T) {
	g, _ := newTestGame(t, nil)
	l := g.layout.(*TermLayout)
	margin := g.cfg.Collision.Margin

	player := l.PlayerBox(0)
	if Overlaps(player, l.ObstacleBox(Obstacle{X: 800}), margin) {
		t.Error("obstacle at the right edge should not collide")
	}
	if !Overlaps(player, l.ObstacleBox(Obstacle{X: 85}), margin) {
		t.Error("obstacle under the player should collide while grounded")
	}

	lifted := l.PlayerBox(g.Settings().JumpImpulse)
	if Overlaps(lifted, l.ObstacleBox(Obstacle{X: 85}), margin) {
		t.Error("one tick into a jump the player should clear the obstacle")
	}
}
