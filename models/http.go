package models

// NewsInput is the JSON body accepted by the news create and edit endpoints.
type NewsInput struct {
	// Title is the headline of the article.
	Title string `json:"title"`

	// Description is the body of the article.
	Description string `json:"description"`
}

// RegisterInput is the JSON body accepted by the registration endpoint.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`

	// PlainPassword is the password chosen by the user. It is hashed
	// server-side and never stored or echoed back.
	PlainPassword string `json:"plainPassword"`
}

// LoginInput is the JSON body accepted by the login endpoint.
type LoginInput struct {
	Email         string `json:"email"`
	PlainPassword string `json:"plainPassword"`
}

// UserEditInput is the JSON body accepted by the user edit endpoint.
// Password changes are out of scope of this endpoint.
type UserEditInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
