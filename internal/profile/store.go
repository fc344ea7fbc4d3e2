package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const DefaultFile = "doodle-jump-profiles.json"

const formatVersion = 1

var (
	ErrNicknameEmpty   = errors.New("nickname is empty")
	ErrNicknameTaken   = errors.New("nickname already exists")
	ErrUnknownNickname = errors.New("unknown nickname")
)

// Player is one registered nickname and its best score.
type Player struct {
	Nickname     string    `json:"nickname"`
	Highscore    int       `json:"highscore"`
	CreatedAt    time.Time `json:"created_at"`
	LastPlayedAt time.Time `json:"last_played_at,omitempty"`
}

type payload struct {
	FormatVersion  int      `json:"format_version"`
	ActiveNickname string   `json:"active_nickname,omitempty"`
	Players        []Player `json:"players"`
}

// Store is a JSON file backed registry of players. It is loaded once on
// Open and every mutation is written back; reads are served from memory so
// the frame loop can call them without touching the disk.
type Store struct {
	path string
	now  func() time.Time

	mu      sync.Mutex
	active  string
	players []Player
}

// Open loads path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultFile
	}
	s := &Store{path: path, now: time.Now}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profiles %s: %w", path, err)
	}
	s.players = normalizePlayers(p.Players)
	if idx := s.index(p.ActiveNickname); idx >= 0 {
		s.active = s.players[idx].Nickname
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Register adds a new nickname with a zero highscore and makes it active.
func (s *Store) Register(nickname string) (Player, error) {
	name := cleanNickname(nickname)
	if name == "" {
		return Player{}, ErrNicknameEmpty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(name) >= 0 {
		return Player{}, fmt.Errorf("%w: %s", ErrNicknameTaken, name)
	}
	p := Player{Nickname: name, CreatedAt: s.now().UTC()}
	players := append(append([]Player(nil), s.players...), p)
	if err := s.save(players, name); err != nil {
		return Player{}, err
	}
	s.players = players
	s.active = name
	return p, nil
}

// Activate selects an existing nickname as the current player. Unknown
// nicknames fail with ErrUnknownNickname and close matches in the message.
func (s *Store) Activate(nickname string) (Player, error) {
	name := cleanNickname(nickname)
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(name)
	if idx < 0 {
		return Player{}, s.unknown(name)
	}
	p := s.players[idx]
	if err := s.save(s.players, p.Nickname); err != nil {
		return Player{}, err
	}
	s.active = p.Nickname
	return p, nil
}

// Forget removes a nickname and its highscore.
func (s *Store) Forget(nickname string) error {
	name := cleanNickname(nickname)
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(name)
	if idx < 0 {
		return s.unknown(name)
	}
	players := make([]Player, 0, len(s.players)-1)
	players = append(players, s.players[:idx]...)
	players = append(players, s.players[idx+1:]...)
	active := s.active
	if strings.EqualFold(active, name) {
		active = ""
	}
	if err := s.save(players, active); err != nil {
		return err
	}
	s.players = players
	s.active = active
	return nil
}

// Current returns the active nickname, if any.
func (s *Store) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != ""
}

func (s *Store) Lookup(nickname string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(cleanNickname(nickname))
	if idx < 0 {
		return Player{}, false
	}
	return s.players[idx], true
}

// Highscore reads the stored highscore of a nickname.
func (s *Store) Highscore(nickname string) (int, bool) {
	p, ok := s.Lookup(nickname)
	if !ok {
		return 0, false
	}
	return p.Highscore, true
}

// ProposeHighscore stores candidate for nickname when it beats the stored
// value. It reports whether anything was written and the value now held.
func (s *Store) ProposeHighscore(nickname string, candidate int) (bool, int, error) {
	name := cleanNickname(nickname)
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.index(name)
	if idx < 0 {
		return false, 0, s.unknown(name)
	}
	current := s.players[idx].Highscore
	if candidate <= current {
		return false, current, nil
	}
	players := append([]Player(nil), s.players...)
	players[idx].Highscore = candidate
	players[idx].LastPlayedAt = s.now().UTC()
	if err := s.save(players, s.active); err != nil {
		return false, current, err
	}
	s.players = players
	return true, candidate, nil
}

// Entry is one leaderboard row.
type Entry struct {
	Nickname string
	Score    int
}

// TopN returns up to n players by highscore, descending. Ties are ordered
// by nickname.
func (s *Store) TopN(n int) []Entry {
	s.mu.Lock()
	out := make([]Entry, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, Entry{Nickname: p.Nickname, Score: p.Highscore})
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return strings.ToLower(out[i].Nickname) < strings.ToLower(out[j].Nickname)
		}
		return out[i].Score > out[j].Score
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *Store) Nicknames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p.Nickname)
	}
	return out
}

func (s *Store) unknown(name string) error {
	names := make([]string, 0, len(s.players))
	for _, p := range s.players {
		names = append(names, p.Nickname)
	}
	if hint := Suggest(name, names, 3); len(hint) > 0 {
		return fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownNickname, name, strings.Join(hint, ", "))
	}
	return fmt.Errorf("%w: %s", ErrUnknownNickname, name)
}

// index must be called with mu held.
func (s *Store) index(name string) int {
	if name == "" {
		return -1
	}
	for i, p := range s.players {
		if strings.EqualFold(p.Nickname, name) {
			return i
		}
	}
	return -1
}

// save writes players to a temp file and renames it over the store file.
func (s *Store) save(players []Player, active string) error {
	p := payload{
		FormatVersion:  formatVersion,
		ActiveNickname: strings.TrimSpace(active),
		Players:        append([]Player(nil), players...),
	}
	if p.Players == nil {
		p.Players = []Player{}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".profiles-*.json")
	if err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}

func normalizePlayers(in []Player) []Player {
	out := make([]Player, 0, len(in))
	seen := map[string]bool{}
	for _, p := range in {
		p.Nickname = cleanNickname(p.Nickname)
		key := strings.ToLower(p.Nickname)
		if key == "" || seen[key] {
			continue
		}
		if p.Highscore < 0 {
			p.Highscore = 0
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func cleanNickname(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
