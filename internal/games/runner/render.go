package runner

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '═'
	GroundMark  = '╪'
	SubsoilChar = '·'
)

// obstacleSkin is the render-side resource paired with an obstacle id.
type obstacleSkin struct {
	glyph rune
	color core.Color
}

var skins = []obstacleSkin{
	{glyph: '▓', color: core.ColorOrange},
	{glyph: '█', color: core.ColorYellow},
	{glyph: '▒', color: core.ColorBrightRed},
}

// Renderer draws snapshots onto a core.Screen. It creates per-obstacle
// skins on spawn events and releases them on destroy events.
type Renderer struct {
	cfg    config.RunnerConfig
	layout *TermLayout
	skins  map[int]obstacleSkin
	next   int

	newBest bool // Set once the current run beats the stored high score
}

// NewRenderer creates a renderer drawing through layout.
func NewRenderer(cfg config.RunnerConfig, layout *TermLayout) *Renderer {
	return &Renderer{
		cfg:    cfg,
		layout: layout,
		skins:  make(map[int]obstacleSkin),
	}
}

// Handle applies render-relevant game events.
func (r *Renderer) Handle(e Event) {
	switch ev := e.(type) {
	case SpawnedEvent:
		r.skins[ev.Obstacle.ID] = skins[r.next%len(skins)]
		r.next++
	case DestroyedEvent:
		delete(r.skins, ev.Obstacle.ID)
	case HighScoreEvent:
		r.newBest = true
	case RunStartedEvent, ReloadedEvent:
		clear(r.skins)
		r.next = 0
		r.newBest = false
	}
}

// Skins returns the number of live render resources.
func (r *Renderer) Skins() int {
	return len(r.skins)
}

// Draw renders the snapshot.
func (r *Renderer) Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	r.drawGround(dst, snap.BackgroundX)
	for _, o := range snap.Obstacles {
		r.drawObstacle(dst, o)
	}
	r.drawPlayer(dst, snap)
	r.drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseIdle:
		drawCenteredMessage(dst, "BLOCK RUNNER", "Enter to start  |  Space to jump", core.ColorBrightYellow)
	case snap.Result != nil:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Enter to continue", snap.Result.FinalScore, snap.Result.FinalHighScore),
			core.ColorBrightRed)
	}
}

// drawGround draws the scrolling ground line and the subsoil below it.
func (r *Renderer) drawGround(dst *core.Screen, bgX float64) {
	ground := r.layout.GroundRow()
	cellW := r.cfg.Layout.CellWidth
	shift := int(math.Floor(-bgX / cellW))

	for x := 0; x < dst.Width(); x++ {
		col := x + shift
		ch := GroundChar
		if mod(col, 8) == 0 {
			ch = GroundMark
		}
		dst.SetColored(x, ground, ch, core.ColorGray)

		for y := ground + 1; y < dst.Height(); y++ {
			if mod(col+y*3, 11) == 0 {
				dst.SetColored(x, y, SubsoilChar, core.ColorGray)
			}
		}
	}
}

// drawObstacle fills the obstacle's cell rectangle with its skin.
func (r *Renderer) drawObstacle(dst *core.Screen, o Obstacle) {
	skin, ok := r.skins[o.ID]
	if !ok {
		skin = skins[0]
	}
	dst.DrawRect(r.layout.ObstacleRect(o), skin.glyph, skin.color)
}

// drawPlayer draws the current sprite frame, bottom-aligned in the player rect.
func (r *Renderer) drawPlayer(dst *core.Screen, snap Snapshot) {
	rect := r.layout.PlayerRect(snap.PlayerHeight)
	rows := spriteRows(snap.Sprite)

	color := core.ColorBrightGreen
	switch snap.Sprite.Pose {
	case PoseDead:
		color = core.ColorRed
	case PoseIdle:
		color = core.ColorWhite
	}

	top := rect.Bottom() - len(rows)
	for dy, row := range rows {
		dx := 0
		for _, ch := range row {
			if ch != ' ' && dx < rect.W {
				dst.SetColored(rect.X+dx, top+dy, ch, color)
			}
			dx++
		}
	}
}

// drawHUD draws score and high score on the top row.
func (r *Renderer) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	best := fmt.Sprintf(" Best: %d ", snap.HighScore)
	color := core.ColorYellow
	if r.newBest {
		best = " NEW BEST" + best
		color = core.ColorBrightGreen
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(best)-2, 0, best, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}

// mod is a modulo that never returns a negative result.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
