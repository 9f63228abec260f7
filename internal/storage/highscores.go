package storage

// HighScores binds a Store to one game. It satisfies the single-game
// high score interface the simulation expects.
type HighScores struct {
	store  *Store
	gameID string
}

// HighScores returns an adapter for gameID.
func (s *Store) HighScores(gameID string) *HighScores {
	return &HighScores{store: s, gameID: gameID}
}

// LoadHighScore returns the game's best score.
func (h *HighScores) LoadHighScore() (int, error) {
	return h.store.HighScore(h.gameID)
}

// SaveHighScore records a new best score.
func (h *HighScores) SaveHighScore(score int) error {
	return h.store.SetHighScore(h.gameID, score)
}
