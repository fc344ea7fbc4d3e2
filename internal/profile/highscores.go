package profile

// Highscores binds the store to one nickname. Read and ProposeWrite are the
// only highscore operations the game client needs.
type Highscores struct {
	store    *Store
	nickname string
}

func (s *Store) Highscores(nickname string) *Highscores {
	return &Highscores{store: s, nickname: cleanNickname(nickname)}
}

func (h *Highscores) Nickname() string {
	return h.nickname
}

// Read returns the stored highscore. ok is false when the nickname is not
// registered.
func (h *Highscores) Read() (int, bool) {
	if h == nil || h.store == nil || h.nickname == "" {
		return 0, false
	}
	return h.store.Highscore(h.nickname)
}

// ProposeWrite persists candidate if it beats the stored value. Repeated
// calls with the same value are no-ops.
func (h *Highscores) ProposeWrite(candidate int) (bool, int, error) {
	if h == nil || h.store == nil || h.nickname == "" {
		return false, 0, ErrUnknownNickname
	}
	return h.store.ProposeHighscore(h.nickname, candidate)
}
