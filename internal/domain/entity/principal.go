package entity

// Principal is the authenticated caller of a request, as carried by its token.
type Principal struct {
	UserID int64
	Email  string
	Roles  Roles
}

// GrantedAuthority is the wire form of a single role.
type GrantedAuthority struct {
	Authority string `json:"authority"`
}

// CurrentUser is what the frontend receives about the signed-in account.
type CurrentUser struct {
	User  *User              `json:"user"`
	Roles []GrantedAuthority `json:"roles"`
}

// NewCurrentUser pairs a user with its granted roles.
func NewCurrentUser(user *User, roles Roles) *CurrentUser {
	authorities := make([]GrantedAuthority, 0, len(roles))
	for _, r := range roles {
		authorities = append(authorities, GrantedAuthority{Authority: r.String()})
	}

	return &CurrentUser{User: user, Roles: authorities}
}
