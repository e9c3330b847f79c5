package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(players []Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func ids(players []Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Id
	}
	return out
}

func TestBuildPlayersFallbackRoster(t *testing.T) {
	players := BuildPlayers(nil, nil, nil)
	require.Len(t, players, 6)
	for _, p := range players {
		assert.Zero(t, p.Wins)
		assert.Zero(t, p.Losses)
	}
	// Swedish collation puts Å after Z.
	assert.Equal(t, []string{
		"Anna Andersson",
		"Björn Berg",
		"Cecilia Ek",
		"David Dahl",
		"Elin Ström",
		"Åsa Öberg",
	}, names(players))
}

func TestBuildPlayersInjectedFallback(t *testing.T) {
	r := Registry{Fallback: []Player{{Id: "x", Name: "X"}}}
	players := r.BuildPlayers(nil, nil, nil)
	require.Len(t, players, 1)
	assert.Equal(t, "x", players[0].Id)
}

func TestBuildPlayersNameResolution(t *testing.T) {
	users := []UserRecord{
		{Id: "u1", Email: "sven@klubb.se", DisplayName: "Sven Svensson"},
		{Id: "u2", Email: "greta@klubb.se"},
		{Id: "u3"},
	}
	players := BuildPlayers(users, nil, nil)
	require.Len(t, players, 3)
	// Collation is case-insensitive at the primary level: g < O < S.
	assert.Equal(t, []string{"greta", "Okänd spelare", "Sven Svensson"}, names(players))
}

func TestBuildPlayersStats(t *testing.T) {
	users := []UserRecord{
		{Id: "u1", Email: "a@klubb.se", LadderWins: 3, LadderLosses: 1},
		{Id: "u2", Email: "b@klubb.se"},
	}
	players := BuildPlayers(users, nil, nil)
	require.Len(t, players, 2)
	assert.Equal(t, 3, players[0].Wins)
	assert.Equal(t, 1, players[0].Losses)
	assert.Zero(t, players[1].Wins)
	assert.Zero(t, players[1].Losses)
}

func TestBuildPlayersSwedishCollation(t *testing.T) {
	users := []UserRecord{
		{Id: "u1", DisplayName: "Örjan"},
		{Id: "u2", DisplayName: "Adam"},
		{Id: "u3", DisplayName: "Zorro"},
		{Id: "u4", DisplayName: "Åke"},
		{Id: "u5", DisplayName: "Ärlig"},
	}
	players := BuildPlayers(users, nil, nil)
	assert.Equal(t, []string{"Adam", "Zorro", "Åke", "Ärlig", "Örjan"}, names(players))
}

func TestBuildPlayersParticipantFilter(t *testing.T) {
	users := []UserRecord{
		{Id: "u1", DisplayName: "Anna"},
		{Id: "u2", DisplayName: "Bo"},
		{Id: "u3", DisplayName: "Calle"},
	}
	players := BuildPlayers(users, nil, []string{"u1", "u3"})
	assert.Equal(t, []string{"u1", "u3"}, ids(players))
}

func TestBuildPlayersSessionUser(t *testing.T) {
	users := []UserRecord{
		{Id: "u1", DisplayName: "Anna"},
		{Id: "u2", DisplayName: "Bo"},
	}

	tests := []struct {
		name           string
		current        *SessionUser
		participantIds []string
		want           []string
	}{
		{
			name:    "appended when missing and no filter",
			current: &SessionUser{Id: "u9", Email: "ny@klubb.se"},
			want:    []string{"u1", "u2", "u9"},
		},
		{
			name:    "not duplicated when already present",
			current: &SessionUser{Id: "u2", Email: "bo@klubb.se"},
			want:    []string{"u1", "u2"},
		},
		{
			name:           "omitted when filter excludes them",
			current:        &SessionUser{Id: "u9"},
			participantIds: []string{"u1", "u2"},
			want:           []string{"u1", "u2"},
		},
		{
			name:           "appended when filter includes them",
			current:        &SessionUser{Id: "u9"},
			participantIds: []string{"u1", "u9"},
			want:           []string{"u1", "u9"},
		},
		{
			name: "nil session user",
			want: []string{"u1", "u2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := BuildPlayers(users, tt.current, tt.participantIds)
			assert.Equal(t, tt.want, ids(players))
		})
	}
}

func TestBuildPlayersSessionUserAppendedWithZeroStats(t *testing.T) {
	players := BuildPlayers(
		[]UserRecord{{Id: "u1", DisplayName: "Anna"}},
		&SessionUser{Id: "u9", Email: "ny@klubb.se"},
		nil,
	)
	require.Len(t, players, 2)
	last := players[len(players)-1]
	assert.Equal(t, "u9", last.Id)
	assert.Equal(t, "ny", last.Name)
	assert.Zero(t, last.Wins)
	assert.Zero(t, last.Losses)
}
