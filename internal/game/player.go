package game

// Player holds the per-player state of the running show. Name is the
// player's identity: unique, trimmed, case-sensitive. MoneyBet, VSPlayer
// and Answer are reset every time a new question begins; zero/empty means
// "not submitted yet" (Answer is 1-based when set).
type Player struct {
	Name     string `json:"name"`
	Jokers   int    `json:"jokers"`
	Money    int64  `json:"money"`
	MoneyBet int64  `json:"money_bet"`
	VSPlayer string `json:"vs_player"`
	Answer   int    `json:"answer"`
}

// clonePlayers returns a deep copy of the roster, used for snapshots
// embedded in events and handed to external readers.
func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}
