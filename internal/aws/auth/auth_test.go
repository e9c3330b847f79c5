package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustIdentity(t *testing.T) {
	tests := []struct {
		name       string
		authorizer map[string]interface{}
		want       Identity
	}{
		{
			name: "rest api authorizer",
			authorizer: map[string]interface{}{
				"claims": map[string]interface{}{
					"sub":   "user-1",
					"email": "anna@example.com",
					"name":  "Anna Andersson",
				},
			},
			want: Identity{UserId: "user-1", Email: "anna@example.com", DisplayName: "Anna Andersson"},
		},
		{
			name: "http api jwt authorizer",
			authorizer: map[string]interface{}{
				"jwt": map[string]interface{}{
					"claims": map[string]interface{}{
						"sub": "user-2",
					},
				},
			},
			want: Identity{UserId: "user-2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustIdentity(tt.authorizer))
		})
	}
}

func TestMustIdentityPanicsWithoutClaims(t *testing.T) {
	assert.Panics(t, func() {
		MustIdentity(map[string]interface{}{})
	})
}

func TestMustAuth(t *testing.T) {
	authorizer := map[string]interface{}{
		"claims": map[string]interface{}{"sub": "user-3"},
	}
	assert.Equal(t, "user-3", MustAuth(authorizer))
}
