package model

// AccessTokenCookie is the HTTP-only cookie holding the bearer token.
const AccessTokenCookie = "accessToken"

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type User struct {
	ID     int              `json:"id"`
	Email  string           `json:"email"`
	Role   string           `json:"role"`
	Person Optional[Person] `json:"person,omitzero"`
	Status bool             `json:"status"`
}

// DisplayName is the linked person's full name, or the email when the user
// has no person.
func (u User) DisplayName() string {
	if name := u.Person.OrElse(Person{}).FullName(); name != "" {
		return name
	}
	return u.Email
}

// Session is what the auth endpoint returns on a successful login.
type Session struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}
