package domain

// User is the signed-in account as exposed by the session collaborator.
type User struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
