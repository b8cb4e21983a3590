package game

import "fmt"

// RenderHUD draws all in-game UI elements using the font atlas.
func RenderHUD(r *Renderer, session *GameSession, fbW, fbH int) {
	white := RGB{R: 255, G: 255, B: 255}
	green := RGB{R: 100, G: 255, B: 100}
	red := RGB{R: 255, G: 80, B: 80}
	yellow := RGB{R: 255, G: 255, B: 100}

	switch session.State {
	case StateRunning:
		s := float32(0.85)

		// Top-left: score.
		scoreStr := fmt.Sprintf("Score: %d", session.Score)
		r.DrawString(scoreStr, 8, 8, s, white)

		// Top-right: snake length.
		lenStr := fmt.Sprintf("Length: %d", session.Snake.Len())
		r.DrawString(lenStr, fbW-TextWidth(lenStr, s)-8, 8, s, green)

	case StateGameOver:
		title := "GAME OVER"
		titleScale := float32(3.0)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-80, titleScale, red)

		scoreStr := fmt.Sprintf("Final score: %d", session.Score)
		scoreScale := float32(1.2)
		r.DrawString(scoreStr, fbW/2-TextWidth(scoreStr, scoreScale)/2, fbH/2-10, scoreScale, white)

		hint := "Press ENTER to play again"
		hintScale := float32(0.75)
		r.DrawString(hint, fbW/2-TextWidth(hint, hintScale)/2, fbH/2+35, hintScale, yellow)
	}

	r.FlushText(fbW, fbH)
}
