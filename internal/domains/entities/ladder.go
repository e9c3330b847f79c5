package entities

import "time"

const (
	LadderStatusActive   = "active"
	LadderStatusArchived = "archived"
)

// Ladder is one competitive season. Ranking holds participant ids in rank
// order (index 0 = top). Version guards concurrent result reporting: every
// ranking write bumps it and is conditional on the value read.
type Ladder struct {
	LadderId     string    `dynamodbav:"LadderId"`
	Name         string    `dynamodbav:"Name"`
	Participants []string  `dynamodbav:"Participants"`
	Ranking      []string  `dynamodbav:"Ranking"`
	Status       string    `dynamodbav:"Status"`
	CreatedBy    string    `dynamodbav:"CreatedBy"`
	Version      int64     `dynamodbav:"Version"`
	CreatedAt    time.Time `dynamodbav:"CreatedAt"`
}
