package main

import (
	"fmt"

	"biome-snake/game"
	"biome-snake/game/entity"
	"biome-snake/game/manager"
	"biome-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 110
)

var biomeColors = map[types.Biome]rl.Color{
	types.BiomeNormal:   {R: 22, G: 33, B: 62, A: 255},
	types.BiomeFire:     {R: 70, G: 24, B: 16, A: 255},
	types.BiomeIce:      {R: 20, G: 52, B: 74, A: 255},
	types.BiomeMagnetic: {R: 48, G: 24, B: 72, A: 255},
	types.BiomeToxic:    {R: 24, G: 58, B: 24, A: 255},
}

var powerUpColors = map[entity.PowerUpKind]rl.Color{
	entity.PowerGrowth:     rl.Green,
	entity.PowerShrink:     rl.Orange,
	entity.PowerBomb:       rl.Red,
	entity.PowerShield:     rl.SkyBlue,
	entity.PowerSlowMotion: rl.Purple,
	entity.PowerGhost:      rl.LightGray,
}

var critterColors = [...]rl.Color{
	entity.BehaviorNormal: rl.Beige,
	entity.BehaviorHunter: rl.Maroon,
	entity.BehaviorScared: rl.Pink,
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*3 - hudHeight
	r.cellSize = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.offsetX = borderPadding
	r.offsetY = borderPadding
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	r.layout(snap.Grid)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	gridW := r.cellSize * int32(snap.Grid.Width)
	gridH := r.cellSize * int32(snap.Grid.Height)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridW+2, gridH+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, biomeColors[snap.Biome])

	r.drawZones(snap.Zones)
	for _, o := range snap.Obstacles {
		x, y := r.cell(o.Position)
		color := rl.Gray
		if o.Destructible {
			color = rl.Brown
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
	if snap.HasFood {
		x, y := r.cell(snap.Food.Position)
		c := snap.Food.Color
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	}
	if snap.PowerUp != nil {
		x, y := r.cell(snap.PowerUp.Position)
		half := r.cellSize / 2
		rl.DrawCircle(x+half, y+half, float32(half), powerUpColors[snap.PowerUp.Kind])
	}
	for _, c := range snap.Critters {
		x, y := r.cell(c.Position)
		rl.DrawRectangle(x+2, y+2, r.cellSize-4, r.cellSize-4, critterColors[c.Behavior])
	}
	r.drawSnake(snap)
	r.drawHUD(snap, gridH)
	r.drawOverlay(snap, gridW, gridH)
}

func (r *Renderer) drawZones(zones []entity.HazardZone) {
	for _, z := range zones {
		cx := r.offsetX + int32(z.CX*float64(r.cellSize)) + r.cellSize/2
		cy := r.offsetY + int32(z.CY*float64(r.cellSize)) + r.cellSize/2
		radius := float32(z.Radius * entity.HazardTolerance * float64(r.cellSize))
		rl.DrawCircle(cx, cy, radius, rl.Fade(rl.Lime, 0.35))
		rl.DrawCircleLines(cx, cy, radius, rl.Lime)
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	color := rl.Green
	if snap.Abilities[manager.Dash].Active {
		color = rl.Fade(rl.Green, 0.5)
	}
	for i, p := range snap.Snake {
		x, y := r.cell(p)
		c := color
		if i == len(snap.Snake)-1 {
			c = rl.White
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, c)
	}
	if len(snap.Snake) == 0 {
		return
	}

	// Direction indicator on the head
	headX, headY := r.cell(snap.Snake[0])
	halfCell := r.cellSize / 2
	full := r.cellSize
	switch snap.Direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + full), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + full)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + full)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + full)},
			rl.Vector2{X: float32(headX + full), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + full), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot, gridH int32) {
	fontSize := int32(20)
	x := r.offsetX
	y := r.offsetY + gridH + borderPadding

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), x, y, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", snap.HighScore), x+180, y, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Level %d (next %d)", snap.Level, snap.NextLevel), x+360, y, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Biome: %s", snap.Biome), x+620, y, fontSize, rl.Yellow)

	y += fontSize + 8
	for i, a := range manager.Abilities {
		st := snap.Abilities[a]
		label := fmt.Sprintf("%s: ready", a)
		color := rl.Green
		switch {
		case st.Active:
			label = fmt.Sprintf("%s: active", a)
			color = rl.Yellow
		case st.Cooldown > 0:
			label = fmt.Sprintf("%s: %.1fs", a, st.Cooldown.Seconds())
			color = rl.Gray
		}
		rl.DrawText(label, x+int32(i)*220, y, fontSize, color)
	}

	y += fontSize + 8
	ex := x
	for _, e := range snap.Effects {
		label := fmt.Sprintf("%s %.1fs", e.Effect, e.Remaining.Seconds())
		rl.DrawText(label, ex, y, fontSize-4, rl.SkyBlue)
		ex += rl.MeasureText(label, fontSize-4) + 20
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot, gridW, gridH int32) {
	var lines []string
	switch snap.State {
	case game.Idle:
		lines = []string{"Press Enter to start", "Arrows/WASD move, Space dash, E time warp, F magnet, P pause"}
	case game.Paused:
		lines = []string{"Paused", "Press P to resume"}
	case game.LevelingUp:
		lines = append(lines, fmt.Sprintf("Level %d! Choose an upgrade", snap.Level))
		for i, u := range snap.Choices {
			lines = append(lines, fmt.Sprintf("%d) %s: %s", i+1, u, u.Description()))
		}
	case game.GameOver:
		lines = []string{
			fmt.Sprintf("Game over (%s)", snap.Cause),
			fmt.Sprintf("Score %d, best %d", snap.Score, snap.HighScore),
			fmt.Sprintf("%d games, average %.0f, median %.0f", snap.History.GamesPlayed, snap.History.Average, snap.History.Median),
			"Press Enter to play again",
		}
	}
	if len(lines) == 0 {
		return
	}

	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, rl.Fade(rl.Black, 0.6))
	fontSize := int32(22)
	y := r.offsetY + gridH/2 - int32(len(lines))*(fontSize+6)/2
	for _, line := range lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, r.offsetX+(gridW-w)/2, y, fontSize, rl.White)
		y += fontSize + 6
	}
}
