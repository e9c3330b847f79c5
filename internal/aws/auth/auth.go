package auth

// Identity is the session user as the Cognito authorizer presents it.
type Identity struct {
	UserId      string
	Email       string
	DisplayName string
}

func MustAuth(authorizer map[string]interface{}) string {
	return MustIdentity(authorizer).UserId
}

// MustIdentity extracts the caller's identity from the API Gateway authorizer
// context. Requests only reach a handler after the authorizer validated the
// token, so a malformed context is a deployment error and panics.
func MustIdentity(authorizer map[string]interface{}) Identity {
	claims := mustClaims(authorizer)
	userId, ok := claims["sub"].(string)
	if !ok {
		panic("invalid sub")
	}
	identity := Identity{UserId: userId}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	}
	return identity
}

func mustClaims(authorizer map[string]interface{}) map[string]interface{} {
	if jwt, ok := authorizer["jwt"].(map[string]interface{}); ok {
		authorizer = jwt
	}
	v, exists := authorizer["claims"]
	if !exists {
		panic("no authorizer claims")
	}
	claims, ok := v.(map[string]interface{})
	if !ok {
		panic("claims must be of type map")
	}
	return claims
}
