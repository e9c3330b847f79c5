package ladder

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Player is one participant in a ladder season. The position of a player
// inside a []Player is the rank: index 0 is the top of the ladder.
type Player struct {
	Id     string `dynamodbav:"Id" json:"id"`
	Name   string `dynamodbav:"Name" json:"name"`
	Wins   int    `dynamodbav:"Wins" json:"wins"`
	Losses int    `dynamodbav:"Losses" json:"losses"`
}

// UserRecord is the engine's view of a stored club member.
type UserRecord struct {
	Id           string
	Email        string
	DisplayName  string
	LadderWins   int
	LadderLosses int
}

// SessionUser is the currently signed-in user, if any.
type SessionUser struct {
	Id          string
	Email       string
	DisplayName string
}

const unknownPlayerName = "Okänd spelare"

// Registry builds the ordered player list for a ladder season.
// Fallback is the roster substituted when no real users exist.
type Registry struct {
	Fallback []Player
}

func DefaultRegistry() Registry {
	return Registry{Fallback: DefaultRoster()}
}

// BuildPlayers builds a season's player list with the default fallback roster.
func BuildPlayers(users []UserRecord, current *SessionUser, participantIds []string) []Player {
	return DefaultRegistry().BuildPlayers(users, current, participantIds)
}

// BuildPlayers maps users to players, restricts to the season's participants
// when participantIds is non-empty, and sorts alphabetically under Swedish
// collation. The alphabetical order is only the initial ranking; reported
// results reorder it. A signed-in user missing from the list is appended with
// zero stats, unless a participant filter is active that excludes them.
func (r Registry) BuildPlayers(users []UserRecord, current *SessionUser, participantIds []string) []Player {
	var players []Player
	if len(users) == 0 {
		players = append(players, r.Fallback...)
	} else {
		players = make([]Player, 0, len(users))
		for _, u := range users {
			players = append(players, Player{
				Id:     u.Id,
				Name:   resolveName(u.DisplayName, u.Email),
				Wins:   u.LadderWins,
				Losses: u.LadderLosses,
			})
		}
	}

	if len(participantIds) > 0 {
		participants := make(map[string]struct{}, len(participantIds))
		for _, id := range participantIds {
			participants[id] = struct{}{}
		}
		filtered := make([]Player, 0, len(players))
		for _, p := range players {
			if _, ok := participants[p.Id]; ok {
				filtered = append(filtered, p)
			}
		}
		players = filtered
	}

	sortByName(players)

	if current != nil && current.Id != "" && indexOf(players, current.Id) < 0 {
		include := len(participantIds) == 0
		for _, id := range participantIds {
			if id == current.Id {
				include = true
				break
			}
		}
		if include {
			players = append(players, Player{
				Id:   current.Id,
				Name: resolveName(current.DisplayName, current.Email),
			})
		}
	}
	return players
}

func resolveName(displayName, email string) string {
	if displayName != "" {
		return displayName
	}
	if email != "" {
		return strings.SplitN(email, "@", 2)[0]
	}
	return unknownPlayerName
}

func sortByName(players []Player) {
	c := collate.New(language.Swedish)
	sort.SliceStable(players, func(i, j int) bool {
		return c.CompareString(players[i].Name, players[j].Name) < 0
	})
}

func indexOf(players []Player, id string) int {
	for i, p := range players {
		if p.Id == id {
			return i
		}
	}
	return -1
}
