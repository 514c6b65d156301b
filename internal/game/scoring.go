package game

// Scoring for the four question types. Each function takes the roster
// under the players write lock, applies the money deltas in place, and
// returns the before/after snapshots embedded verbatim in the ShowResults
// event.

// scoreNormal pays the fixed reward to every player whose answer matches
// the correct option index.
func scoreNormal(players []Player, correct int, reward int64) (before, after []Player) {
	before = clonePlayers(players)
	for i := range players {
		if players[i].Answer == correct {
			players[i].Money += reward
		}
	}
	return before, clonePlayers(players)
}

// scoreBetting settles bets: a correct answer wins the player's own bet,
// anything else loses it. A balance that lands exactly on 0 is floored to
// 1 so the player can keep participating.
func scoreBetting(players []Player, correct int) (before, after []Player) {
	before = clonePlayers(players)
	for i := range players {
		if players[i].Answer == correct {
			players[i].Money += players[i].MoneyBet
		} else {
			players[i].Money -= players[i].MoneyBet
			if players[i].Money == 0 {
				players[i].Money = 1
			}
		}
	}
	return before, clonePlayers(players)
}

// scoreEstimation pays the fixed reward to every player tied for the
// minimum absolute distance to the correct value. Players who never
// answered compete with an implicit 0.
func scoreEstimation(players []Player, correct int, reward int64) (before, after []Player) {
	before = clonePlayers(players)

	minDistance := -1
	var closest []string
	for i := range players {
		diff := players[i].Answer - correct
		if diff < 0 {
			diff = -diff
		}
		switch {
		case minDistance < 0 || diff < minDistance:
			minDistance = diff
			closest = []string{players[i].Name}
		case diff == minDistance:
			closest = append(closest, players[i].Name)
		}
	}

	for i := range players {
		for _, name := range closest {
			if players[i].Name == name {
				players[i].Money += reward
				break
			}
		}
	}
	return before, clonePlayers(players)
}

// scoreVersus settles a versus question. Every selector applies a factor
// to the balance of the player they targeted: x0.5 when the selector
// answered correctly, x2 otherwise. Factors for all players are computed
// first from the untouched pre-round state and then applied in one pass,
// so multiple attacks on the same target compose multiplicatively instead
// of cascading in request order. Results are truncated to whole units; an
// exact 0 is floored to 1.
//
// The original rules drafted a mirrored effect on the selector's own
// balance as well; it was never enabled and is intentionally left out
// (see DESIGN.md).
func scoreVersus(players []Player, correct int) (before, after []Player) {
	before = clonePlayers(players)

	factors := make([]float64, len(players))
	for i := range factors {
		factors[i] = 1.0
	}
	for i := range players {
		if players[i].VSPlayer == "" {
			continue
		}
		for j := range players {
			if players[i].VSPlayer == players[j].Name {
				if players[i].Answer == correct {
					factors[j] /= 2.0
				} else {
					factors[j] *= 2.0
				}
				break
			}
		}
	}

	for i := range players {
		players[i].Money = int64(float64(players[i].Money) * factors[i])
		if players[i].Money == 0 {
			players[i].Money = 1
		}
	}
	return before, clonePlayers(players)
}
