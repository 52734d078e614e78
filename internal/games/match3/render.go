package match3

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth    = 4 // columns per board cell: bracket, glyph, bracket, gap
	cellHeight   = 2 // rows per board cell
	hudHeight    = 3
	footerHeight = 2
)

// boardSize returns the outer size of the board frame.
func (g *Game) boardSize() (w, h int) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	if g.session != nil {
		rows, cols = g.session.Options().Rows, g.session.Options().Cols
	}
	return cols*cellWidth + 3, rows*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.session == nil {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.rt.ScreenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.rt.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws level, score, moves and the progress bar.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	lvl := g.session.Level()
	title := fmt.Sprintf("MATCH-3  Level %d/%d", lvl.Level, g.table.Count())
	if l := g.table.Get(lvl.Level); l != nil && l.Name != "" {
		title += " · " + l.Name
	}
	dst.DrawTextCentered(0, title, core.ColorCyan)

	scoreStr := fmt.Sprintf("Score: %d/%d", g.session.Score(), lvl.TargetScore)
	dst.DrawText(boardX, 1, scoreStr)

	movesStr := fmt.Sprintf("Moves: %d", g.session.MovesLeft())
	movesColor := core.ColorDefault
	if g.session.MovesLeft() <= 5 {
		movesColor = core.ColorRed
	}
	dst.DrawTextColor(boardX+boardW-len(movesStr), 1, movesStr, movesColor)

	earned := 0
	if g.session.Score() >= lvl.TargetScore {
		earned = g.session.Stars()
	}
	stars := starString(earned)
	barW := boardW - len([]rune(stars)) - 1
	filled := 0
	if lvl.TargetScore > 0 {
		filled = min(barW, g.session.Score()*barW/lvl.TargetScore)
	}
	dst.DrawTextColor(boardX, 2, strings.Repeat("█", filled), core.ColorGreen)
	dst.DrawTextColor(boardX+filled, 2, strings.Repeat("░", barW-filled), core.ColorGray)
	dst.DrawTextColor(boardX+barW+1, 2, stars, core.ColorYellow)
}

// renderBoard draws the frame, the tokens and the cursor decorations.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	boardW, boardH := g.boardSize()
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	board := g.session.Board()
	f, progress, animating := g.anim.current()
	if animating {
		board = f.board
	}

	cellX := func(c int) int { return boardX + 2 + c*cellWidth }
	cellY := func(r int) int { return boardY + 1 + r*cellHeight }

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			p := engine.P(r, c)
			t := board.At(p)
			if t.Empty() {
				continue
			}

			glyph, color := tokenGlyph(t)
			y := cellY(r)

			if animating {
				switch f.phase {
				case engine.PhaseRemoving:
					if f.cleared.Has(p) && (g.tick/3)%2 == 0 {
						glyph, color = '*', core.ColorWhite
					}
				case engine.PhaseFalling:
					if d := f.falls[t.ID]; d > 0 {
						y = boardY + 1 + int(math.Round((float64(r)-fallOffset(d, progress))*cellHeight))
						if y <= boardY {
							continue
						}
					}
				}
			}

			dst.SetColor(cellX(c), y, glyph, color)
		}
	}

	if animating {
		if f.phase == engine.PhaseSwapping || f.phase == engine.PhaseSwapBack {
			g.drawMarker(dst, cellX, cellY, f.move.A, '<', '>', core.ColorHighlight)
			g.drawMarker(dst, cellX, cellY, f.move.B, '<', '>', core.ColorHighlight)
		}
		return
	}

	if g.hint != nil {
		g.drawMarker(dst, cellX, cellY, g.hint.A, '(', ')', core.ColorCyan)
		g.drawMarker(dst, cellX, cellY, g.hint.B, '(', ')', core.ColorCyan)
	}
	if sel, ok := g.session.Selection(); ok {
		g.drawMarker(dst, cellX, cellY, sel, '{', '}', core.ColorHighlight)
	}
	if g.session.Phase() == engine.PhaseIdle {
		g.drawMarker(dst, cellX, cellY, g.cursor, '[', ']', core.ColorHighlight)
	}
}

func (g *Game) drawMarker(dst *core.Screen, cellX, cellY func(int) int, p engine.Position, left, right rune, color core.Color) {
	x, y := cellX(p.Col), cellY(p.Row)
	dst.SetColor(x-1, y, left, color)
	dst.SetColor(x+1, y, right, color)
}

// renderFooter draws the combo banner or status message and the controls.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.comboText != "":
		dst.DrawTextCentered(y, g.comboText, core.ColorYellow)
	case g.message != "":
		dst.DrawTextCentered(y, g.message, core.ColorGray)
	}
	dst.DrawTextCentered(y+1, g.Controls(), core.ColorGray)
}

// renderOverlays draws pause and end-of-level boxes.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorCyan, "PAUSED", "Press P to resume")
		return
	}
	if g.anim.active() {
		return
	}

	if g.campaignDone {
		g.drawOverlay(dst, centerX, centerY, core.ColorYellow,
			"ALL CLEAR!",
			fmt.Sprintf("Total score: %d", g.total),
			"Press R to play again")
		return
	}

	switch g.session.Phase() {
	case engine.PhaseLevelComplete:
		headline := "LEVEL COMPLETE!"
		next := "Enter: next level  R: replay"
		if g.session.IsLastLevel() {
			headline = "ALL CLEAR!"
			next = "Enter: finish  R: replay"
		}
		g.drawOverlay(dst, centerX, centerY, core.ColorGreen,
			headline,
			starString(g.session.Stars()),
			fmt.Sprintf("Score: %d", g.session.Score()),
			next)
	case engine.PhaseGameOver:
		g.drawOverlay(dst, centerX, centerY, core.ColorRed,
			"OUT OF MOVES",
			fmt.Sprintf("Score: %d/%d", g.session.Score(), g.session.Level().TargetScore),
			"Press R to retry")
	}
}

// drawOverlay draws a bordered text box centered on (centerX, centerY).
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColor(centerX-len([]rune(line))/2, box.Y+1+i, line, c)
	}
}

// tokenGlyph returns the rune and color used to draw a token.
func tokenGlyph(t engine.Token) (rune, core.Color) {
	color := core.ColorDefault
	if int(t.Color) < len(core.TokenColors) {
		color = core.TokenColors[t.Color]
	}

	switch t.Special {
	case engine.SpecialStripedH:
		return '━', color
	case engine.SpecialStripedV:
		return '┃', color
	case engine.SpecialAreaBomb:
		return '✱', color
	case engine.SpecialColorBomb:
		return '◆', core.ColorWhite
	default:
		return '●', color
	}
}

// starString renders a rating as filled and empty stars.
func starString(stars int) string {
	stars = core.Clamp(stars, 0, 3)
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}

// comboLabel formats the combo banner. Combo levels are zero-based, so the
// first cascade after the swap is shown as x2.
func comboLabel(combo int) string {
	return fmt.Sprintf("COMBO x%d!", combo+1)
}
