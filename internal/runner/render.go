package runner

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/espresso-rush/internal/core"
)

// Visual characters for rendering
const (
	CoffeeChar   = '●'
	MilkChar     = '▮'
	FireballChar = '▲'
	PlayerChar   = '☻'
	LaneChar     = '┊'
)

// hudRows is the number of rows reserved at the top for the HUD.
const hudRows = 2

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	if snap.Phase == PhaseNotStarted {
		g.renderTitle(dst)
		return
	}

	g.renderLanes(dst)
	for _, c := range snap.Collectibles {
		if c.Y < 0 {
			continue
		}
		glyph, color := CoffeeChar, core.ColorAmber
		if c.Kind == KindMilk {
			glyph, color = MilkChar, core.ColorCream
		}
		dst.SetWithColor(laneX(dst, c.Lane), rowY(dst, c.Y), glyph, color)
	}
	for _, p := range snap.Projectiles {
		if p.Y < 0 {
			continue
		}
		dst.SetWithColor(laneX(dst, p.Lane), rowY(dst, p.Y), FireballChar, core.ColorFire)
	}
	g.renderPlayer(dst, snap)
	g.renderHUD(dst, snap)

	if snap.Paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorWhite)
	}
	if snap.Phase == PhaseOver {
		drawCenteredBox(dst, crashTitle(snap.Persona),
			fmt.Sprintf("Distance %d  |  Espressos %d", snap.Score, snap.CoffeeCount), core.ColorRed)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()
	y := h/2 - 4
	dst.DrawTextCentered(y, "ESPRESSO", core.ColorWhite)
	dst.DrawTextCentered(y+1, "RUSH", core.ColorAmber)
	dst.DrawTextCentered(y+3, fmt.Sprintf("Run with Marta! Grab the coffee, shout %q, and avoid the milk.", g.cfg.Messages.Shout), core.ColorGray)
	dst.DrawTextCentered(y+5, "Press Enter to start", core.ColorYellow)
	dst.DrawTextCentered(y+6, "←/→ to move", core.ColorGray)
	dst.DrawTextCentered(y+7, fmt.Sprintf("Collect %d coffees to unlock FIREBALLS", g.cfg.Modes.FireballUnlockAt), core.ColorFire)
}

func (g *Game) renderLanes(dst *core.Screen) {
	w := dst.Width()
	for i := 1; i < LaneCount; i++ {
		dst.DrawVLine(w*i/LaneCount, hudRows, dst.Height()-hudRows, LaneChar, core.ColorGray)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, snap Snapshot) {
	x := laneX(dst, snap.Lane)
	y := rowY(dst, g.cfg.Player.Row)

	color := personaColor(snap.Persona)
	dst.SetWithColor(x, y, PlayerChar, color)

	label := string(snap.Persona)
	dst.DrawTextWithColor(x-utf8.RuneCountInString(label)/2, y+1, label, color)

	if snap.Message != "" {
		dst.DrawTextWithColor(x-utf8.RuneCountInString(snap.Message)/2, y-2, snap.Message, core.ColorYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	scoreColor := core.ColorAmber
	if snap.CanFire {
		scoreColor = core.ColorFire
	}
	dst.DrawTextWithColor(2, 0, fmt.Sprintf("SCORE %d", snap.Score), scoreColor)
	dst.DrawTextWithColor(2, 1, fmt.Sprintf("☕ %d", snap.CoffeeCount), core.ColorAmber)

	speed := fmt.Sprintf("%.1fx SPEED", snap.SpeedRatio)
	dst.DrawTextWithColor(dst.Width()-utf8.RuneCountInString(speed)-2, 0, speed, core.ColorYellow)

	switch snap.Mode {
	case ModePowerBurst:
		burst := fmt.Sprintf("POWER BURST %.1fs", snap.BurstRemaining.Seconds())
		dst.DrawTextCentered(1, burst, core.ColorFire)
	case ModeFireball:
		dst.DrawTextCentered(dst.Height()-1, "PRESS SPACE OR TAP TO SHOOT", core.ColorFire)
	}
}

// laneX maps a lane to the center column of its third of the screen.
func laneX(dst *core.Screen, l Lane) int {
	w := dst.Width()
	return w*l.Index()/LaneCount + w/(LaneCount*2)
}

// rowY maps a 0-100 vertical position to a screen row below the HUD.
func rowY(dst *core.Screen, y float64) int {
	span := dst.Height() - hudRows - 1
	return hudRows + int(math.Round(y/100*float64(span)))
}

func personaColor(p Persona) core.Color {
	switch p {
	case PersonaEmilia:
		return core.ColorFire
	case PersonaSuper:
		return core.ColorBlue
	default:
		return core.ColorPink
	}
}

func crashTitle(p Persona) string {
	switch p {
	case PersonaEmilia:
		return "EMILÍA BURNED OUT!"
	case PersonaSuper:
		return "SUPER CRASH!"
	default:
		return "MARTA CRASHED!"
	}
}

// drawCenteredBox draws a message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)

	boxW := max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextWithColor(box.X+(boxW-tw)/2, box.Y+1, title, c)
	dst.DrawTextWithColor(box.X+(boxW-sw)/2, box.Y+3, subtitle, core.ColorWhite)
}
