package ladder

import "github.com/klubbhq/klubb/internal/domains/entities"

// UserRecordsFromProfiles adapts stored club members to the engine's input.
func UserRecordsFromProfiles(profiles []entities.UserProfile) []UserRecord {
	records := make([]UserRecord, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, UserRecord{
			Id:           p.UserId,
			Email:        p.Email,
			DisplayName:  p.DisplayName,
			LadderWins:   p.LadderWins,
			LadderLosses: p.LadderLosses,
		})
	}
	return records
}
