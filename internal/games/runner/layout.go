package runner

import (
	"math"

	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/core"
)

// TermLayout places world-unit positions on the terminal cell grid.
// Its boxes are the cell-snapped rectangles actually drawn.
type TermLayout struct {
	cfg  config.RunnerConfig
	cols int
	rows int
}

// NewTermLayout creates a layout for a cols x rows terminal.
func NewTermLayout(cfg config.RunnerConfig, cols, rows int) *TermLayout {
	return &TermLayout{cfg: cfg, cols: cols, rows: rows}
}

// Resize updates the terminal dimensions.
func (l *TermLayout) Resize(cols, rows int) {
	l.cols = cols
	l.rows = rows
}

// Viewport returns the terminal size in world units.
func (l *TermLayout) Viewport() (w, h float64) {
	return float64(l.cols) * l.cfg.Layout.CellWidth, float64(l.rows) * l.cfg.Layout.CellHeight
}

// GroundRow is the row of the ground line; sprites stand on the row above it.
func (l *TermLayout) GroundRow() int {
	return l.rows - l.cfg.Player.GroundOffset
}

// PlayerRect returns the player's cell rectangle at the given height.
func (l *TermLayout) PlayerRect(height float64) core.Rect {
	lift := int(math.Round(height / l.cfg.Layout.CellHeight))
	p := l.cfg.Player
	return core.NewRect(p.X, l.GroundRow()-p.Height-lift, p.Width, p.Height)
}

// ObstacleRect returns an obstacle's cell rectangle.
func (l *TermLayout) ObstacleRect(o Obstacle) core.Rect {
	col := int(math.Floor(o.X / l.cfg.Layout.CellWidth))
	ob := l.cfg.Obstacles
	return core.NewRect(col, l.GroundRow()-ob.Height, ob.Width, ob.Height)
}

// PlayerBox implements Layout.
func (l *TermLayout) PlayerBox(height float64) core.Box {
	return core.BoxOf(l.PlayerRect(height), l.cfg.Layout.CellWidth, l.cfg.Layout.CellHeight)
}

// ObstacleBox implements Layout.
func (l *TermLayout) ObstacleBox(o Obstacle) core.Box {
	return core.BoxOf(l.ObstacleRect(o), l.cfg.Layout.CellWidth, l.cfg.Layout.CellHeight)
}

type viewporter interface {
	Viewport() (w, h float64)
}

// resizableLayout is a Layout that follows the terminal size.
type resizableLayout interface {
	Layout
	viewporter
	Resize(cols, rows int)
}

var _ resizableLayout = (*TermLayout)(nil)
