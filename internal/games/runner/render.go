package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	SpikeChar    = '▲'
	FlyerChar    = '◄'
	CoinChar     = '$'
	ShieldChar   = 'S'
	BoostChar    = '+'
	HeartChar    = '♥'
	GroundChar   = '═'
	EarthChar    = '▒'
	RainChar     = '/'
	hudRows      = 2
	stormBarSize = 20
)

var boulderFrames = []rune{'◐', '◓', '◑', '◒'}

// viewport maps world units onto the screen below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, field config.FieldConfig) viewport {
	rows := max(1, dst.Height()-hudRows)
	return viewport{
		sx:  float64(dst.Width()) / field.Width,
		sy:  float64(rows) / field.Height,
		top: hudRows,
	}
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// rect converts a world rectangle to cells, keeping at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * v.sx))
	x1 := int(math.Ceil((x + w) * v.sx))
	y0 := int(math.Floor(y * v.sy))
	y1 := int(math.Ceil((y + h) * v.sy))
	return core.NewRect(x0, v.top+y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := &g.last
	cfg := g.session.Config()
	v := newViewport(dst, cfg.Field)

	g.drawWeather(dst, v, snap)

	// Ground
	groundRow := v.row(cfg.Field.GroundY())
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), EarthChar, core.ColorGray)
	}

	for _, e := range snap.Obstacles {
		drawObstacle(dst, v, e)
	}
	for _, e := range snap.PowerUps {
		dst.DrawRectColor(v.rect(e.X, e.Y, e.W, e.H), powerUpRune(PowerUpKind(e.Kind)), powerUpColor(PowerUpKind(e.Kind)))
	}
	for _, e := range snap.CoinItems {
		dst.DrawRectColor(v.rect(e.X, e.Y, e.W, e.H), CoinChar, core.ColorBrightYellow)
	}

	g.drawPlayer(dst, v, snap)
	g.drawHUD(dst, snap, cfg.Storm.DangerZone)

	switch snap.State {
	case StateTitle:
		drawCenteredMessage(dst, strings.ToUpper(g.title),
			"Enter: start  Space: jump (double-jump!)  P: pause")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Coins: %d  |  Press R to restart", snap.Score, snap.Coins))
	}
}

// drawWeather sprinkles rain proportional to storm intensity.
// The pattern only depends on the tick so it stays stable between frames.
func (g *Game) drawWeather(dst *core.Screen, v viewport, snap *Snapshot) {
	if snap.LightningFlash {
		for y := v.top; y < dst.Height(); y++ {
			dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorBrightWhite)
		}
		dst.DrawTextColor(dst.Width()/3, v.top, "⚡", core.ColorBrightYellow)
	}
	if snap.WeatherIntensity <= 0 {
		return
	}

	spacing := max(4, 60-int(snap.WeatherIntensity/2))
	shift := int(snap.Tick % uint64(spacing)) //#nosec G115 -- small modulus
	for y := v.top; y < dst.Height(); y++ {
		for x := range dst.Width() {
			if (x+y*3+shift)%spacing == 0 {
				dst.SetColor(x, y, RainChar, core.ColorBlue)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, v viewport, e EntityView) {
	r := v.rect(e.X, e.Y, e.W, e.H)
	switch ObstacleKind(e.Kind) {
	case ObstacleFlying:
		dst.DrawRectColor(r, FlyerChar, core.ColorOrange)
	case ObstacleBoulder:
		frame := int(e.Rotation/90) % len(boulderFrames)
		dst.DrawRectColor(r, boulderFrames[frame], core.ColorMagenta)
	default:
		dst.DrawRectColor(r, SpikeChar, core.ColorRed)
	}
}

func powerUpRune(k PowerUpKind) rune {
	switch k {
	case PowerUpInvincibility:
		return ShieldChar
	case PowerUpScoreBoost:
		return BoostChar
	default:
		return HeartChar
	}
}

func powerUpColor(k PowerUpKind) core.Color {
	switch k {
	case PowerUpInvincibility:
		return core.ColorBrightCyan
	case PowerUpScoreBoost:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

// drawPlayer renders the runner, blinking while invincible.
func (g *Game) drawPlayer(dst *core.Screen, v viewport, snap *Snapshot) {
	p := snap.Player
	color := core.ColorBrightGreen
	if p.Invincible {
		if p.InvincibleTicks%10 >= 5 {
			return
		}
		color = core.ColorBrightCyan
	}
	dst.DrawRectColor(v.rect(p.X, p.Y, p.W, p.H), PlayerChar, color)
}

// drawHUD renders score, lives and the storm meter in the top rows.
func (g *Game) drawHUD(dst *core.Screen, snap *Snapshot, dangerZone float64) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawHLine(0, 1, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score: %d  Coins: %d  Lvl: %d ", snap.Score, snap.Coins, snap.Level)
	dst.DrawText(0, 0, left)
	hearts := strings.Repeat(string(HeartChar), snap.Lives)
	dst.DrawTextColor(len(left), 0, hearts, core.ColorBrightRed)

	best := fmt.Sprintf(" Best: %d ", max(snap.HighScore, snap.Score))
	dst.DrawText(dst.Width()-len(best), 0, best)

	filled := int(snap.StormProgress / MaxStormProgress * stormBarSize)
	color := core.ColorGreen
	switch {
	case snap.StormProgress >= dangerZone:
		color = core.ColorRed
	case snap.StormProgress >= 50:
		color = core.ColorYellow
	}
	dst.DrawText(1, 1, "Storm [")
	dst.DrawTextColor(8, 1, strings.Repeat("#", filled), color)
	dst.DrawTextColor(8+filled, 1, strings.Repeat(".", stormBarSize-filled), core.ColorGray)
	dst.DrawText(8+stormBarSize, 1, fmt.Sprintf("] %3.0f%%", snap.StormProgress))
	if snap.StormDanger {
		dst.DrawTextColor(16+stormBarSize, 1, "DANGER", core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
