package ladder

// Reason is why a challenge was rejected.
type Reason string

const (
	ReasonSelf        Reason = "self"
	ReasonMissing     Reason = "missing"
	ReasonLowerRanked Reason = "lower-ranked"
	ReasonTooFar      Reason = "too-far"
)

// MaxChallengeDistance is how many ranks above their own position a player
// may reach when issuing a challenge.
const MaxChallengeDistance = 4

type ChallengeStatus struct {
	Eligible bool   `json:"eligible"`
	Reason   Reason `json:"reason,omitempty"`
}

// GetChallengeStatus decides whether challengerId may challenge opponentId
// on the given ladder. A challenge is only allowed upward, and at most
// MaxChallengeDistance ranks up. Checks run in a fixed order: self, missing,
// direction, distance.
func GetChallengeStatus(players []Player, challengerId, opponentId string) ChallengeStatus {
	if challengerId == opponentId {
		return ChallengeStatus{Reason: ReasonSelf}
	}
	challengerIndex := indexOf(players, challengerId)
	opponentIndex := indexOf(players, opponentId)
	if challengerIndex < 0 || opponentIndex < 0 {
		return ChallengeStatus{Reason: ReasonMissing}
	}
	positionDifference := challengerIndex - opponentIndex
	if positionDifference <= 0 {
		return ChallengeStatus{Reason: ReasonLowerRanked}
	}
	if positionDifference > MaxChallengeDistance {
		return ChallengeStatus{Reason: ReasonTooFar}
	}
	return ChallengeStatus{Eligible: true}
}
