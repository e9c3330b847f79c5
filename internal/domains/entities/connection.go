package entities

import "time"

type Connection struct {
	ConnectionId string    `dynamodbav:"ConnectionId"`
	UserId       string    `dynamodbav:"UserId"`
	ConnectedAt  time.Time `dynamodbav:"ConnectedAt"`
}
