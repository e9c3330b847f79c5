package entities

import "time"

type UserProfile struct {
	UserId       string    `dynamodbav:"UserId"`
	Email        string    `dynamodbav:"Email"`
	DisplayName  string    `dynamodbav:"DisplayName"`
	LadderWins   int       `dynamodbav:"LadderWins"`
	LadderLosses int       `dynamodbav:"LadderLosses"`
	CreatedAt    time.Time `dynamodbav:"CreatedAt"`
}
