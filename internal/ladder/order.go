package ladder

// OrderByRanking reorders players to follow a persisted ranking of ids.
// Players missing from the ranking keep their relative order and go to the
// bottom; ranked ids without a player are skipped.
func OrderByRanking(players []Player, ranking []string) []Player {
	if len(ranking) == 0 {
		return players
	}
	rank := make(map[string]int, len(ranking))
	for i, id := range ranking {
		rank[id] = i
	}
	ordered := make([]Player, 0, len(players))
	var unranked []Player
	for _, id := range ranking {
		if i := indexOf(players, id); i >= 0 {
			ordered = append(ordered, players[i])
		}
	}
	for _, p := range players {
		if _, ok := rank[p.Id]; !ok {
			unranked = append(unranked, p)
		}
	}
	return append(ordered, unranked...)
}

// Ids returns the player ids in rank order, the persisted form of a ladder
// ordering.
func Ids(players []Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Id
	}
	return out
}
