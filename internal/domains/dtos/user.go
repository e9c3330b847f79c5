package dtos

import (
	"time"

	"github.com/klubbhq/klubb/internal/domains/entities"
)

type UserResponse struct {
	Id           string    `json:"id"`
	DisplayName  string    `json:"displayName,omitempty"`
	Email        string    `json:"email,omitempty"`
	LadderWins   int       `json:"ladderWins"`
	LadderLosses int       `json:"ladderLosses"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserResponseFromEntity shapes a profile for the API. The email is only
// included when members request their own record.
func UserResponseFromEntity(profile entities.UserProfile, full bool) UserResponse {
	user := UserResponse{
		Id:           profile.UserId,
		DisplayName:  profile.DisplayName,
		LadderWins:   profile.LadderWins,
		LadderLosses: profile.LadderLosses,
		CreatedAt:    profile.CreatedAt,
	}
	if full {
		user.Email = profile.Email
	}
	return user
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func UserListResponseFromEntities(profiles []entities.UserProfile) UserListResponse {
	resp := UserListResponse{Users: make([]UserResponse, 0, len(profiles))}
	for _, p := range profiles {
		resp.Users = append(resp.Users, UserResponseFromEntity(p, false))
	}
	return resp
}
