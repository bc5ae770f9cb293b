package game

// ScreenHUD keeps the HUD state a renderer draws: one heart slot per
// possible life, the score and the game over banner.
type ScreenHUD struct {
	Lives []bool
	Score int

	Over       bool
	FinalScore int
}

// NewScreenHUD creates a HUD with maxLives heart slots, all hidden
func NewScreenHUD(maxLives int) *ScreenHUD {
	return &ScreenHUD{Lives: make([]bool, maxLives)}
}

// ShowLife lights heart slot n, counted from 1. Out of range slots are ignored.
func (h *ScreenHUD) ShowLife(n int) {
	if n >= 1 && n <= len(h.Lives) {
		h.Lives[n-1] = true
	}
}

// HideLife dims heart slot n
func (h *ScreenHUD) HideLife(n int) {
	if n >= 1 && n <= len(h.Lives) {
		h.Lives[n-1] = false
	}
}

// SetScore updates the score text
func (h *ScreenHUD) SetScore(score int) {
	h.Score = score
}

// GameOver shows the final score banner
func (h *ScreenHUD) GameOver(score int) {
	h.Over = true
	h.FinalScore = score
}

// Reset clears the HUD for a new session
func (h *ScreenHUD) Reset() {
	for i := range h.Lives {
		h.Lives[i] = false
	}
	h.Score = 0
	h.Over = false
	h.FinalScore = 0
}

// LivesShown counts the lit hearts
func (h *ScreenHUD) LivesShown() int {
	n := 0
	for _, on := range h.Lives {
		if on {
			n++
		}
	}
	return n
}
