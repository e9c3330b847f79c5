package storage

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Config struct {
	UserProfilesTableName  *string
	BookingsTableName      *string
	LaddersTableName       *string
	ConnectionsTableName   *string
	AnnouncementsTableName *string
}

type Client struct {
	dynamodb *dynamodb.Client
	cfg      Config
}

func NewClient(dynamoClient *dynamodb.Client) *Client {
	return &Client{
		dynamodb: dynamoClient,
		cfg:      loadConfig(),
	}
}

func loadConfig() Config {
	return Config{
		UserProfilesTableName:  tableName("USER_PROFILES_TABLE", "UserProfiles"),
		BookingsTableName:      tableName("BOOKINGS_TABLE", "Bookings"),
		LaddersTableName:       tableName("LADDERS_TABLE", "Ladders"),
		ConnectionsTableName:   tableName("CONNECTIONS_TABLE", "Connections"),
		AnnouncementsTableName: tableName("ANNOUNCEMENTS_TABLE", "Announcements"),
	}
}

func tableName(env, fallback string) *string {
	if v := os.Getenv(env); v != "" {
		return aws.String(v)
	}
	return aws.String(fallback)
}
