package entities

import "time"

type Announcement struct {
	AnnouncementId string    `dynamodbav:"AnnouncementId"`
	Title          string    `dynamodbav:"Title"`
	Body           string    `dynamodbav:"Body"`
	CreatedBy      string    `dynamodbav:"CreatedBy"`
	CreatedAt      time.Time `dynamodbav:"CreatedAt"`
}
