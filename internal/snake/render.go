package snake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the current frame: the board while running, or the
// game-over text and score once the game has ended.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	if g.phase == PhaseGameOver {
		g.renderGameOver(dst)
		g.renderBorder(dst)
		return
	}

	g.renderSnake(dst)
	dst.DrawCell(g.food.X, g.food.Y, core.ColorBerry)
	g.renderBorder(dst)
}

func (g *Game) renderSnake(dst core.Canvas) {
	for _, p := range g.body.cells {
		dst.DrawCell(p.X, p.Y, core.ColorSnakeBody)
	}
	head := g.body.Head()
	dst.DrawCell(head.X, head.Y, core.ColorSnakeHead)
}

func (g *Game) renderBorder(dst core.Canvas) {
	for _, p := range g.border.cells {
		dst.DrawCell(p.X, p.Y, core.ColorBorder)
	}
}

// renderGameOver draws the label over the full score line so the digits
// keep the number color.
func (g *Game) renderGameOver(dst core.Canvas) {
	mid := g.grid.Size / 2
	score := g.Score()

	dst.DrawText(mid, mid-3, "Game over!", core.ColorGameOver)
	dst.DrawText(mid, mid-1, fmt.Sprintf("Score: %d", score), core.ColorScoreNumber)
	dst.DrawText(mid, mid-1, "Score: "+strings.Repeat(" ", len(strconv.Itoa(score))), core.ColorScore)
}
