package models

// User is the locally persisted current user. At most one record exists at a
// time: it is created at login and deleted at logout. Guest users get a
// generated id and never trigger sync, but carry the same schema.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
	IsGuest  bool   `json:"is_guest"`

	// SessionToken is the remote access token captured at login. Stored so
	// that the session survives a restart; never sent to the remote API as a
	// payload field.
	SessionToken string `json:"-"`
}

// ToRemote maps the user onto the wire representation used by the
// registration endpoint.
func (u User) ToRemote() RemoteUser {
	return RemoteUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
		IsGuest:  u.IsGuest,
	}
}
