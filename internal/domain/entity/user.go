package entity

// User is an account created or refreshed on Google sign-in.
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	GoogleSub     string `json:"googleSub"`
	PictureURL    string `json:"pictureUrl"`
	FullName      string `json:"fullName"`
	GivenName     string `json:"givenName"`
	FamilyName    string `json:"familyName"`
	EmailVerified bool   `json:"emailVerified"`
	Locale        string `json:"locale"`
	HostedDomain  string `json:"hostedDomain"`
	Admin         bool   `json:"admin"`
}
