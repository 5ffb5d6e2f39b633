package client

import "time"

// User is the public profile returned by the auth endpoints.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Username   string    `json:"username,omitempty"`
	ProfilePic string    `json:"profilePic,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DisplayName prefers the full name over the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}

	return u.Username
}

// Profile is the populated author of a blog or comment.
type Profile struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	ProfilePic string `json:"profilePic,omitempty"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
}

// Blog mirrors the server's blog representation.
type Blog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CoverImage string    `json:"coverImage,omitempty"`
	Likes      int       `json:"likes"`
	Author     *Profile  `json:"author,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Comment mirrors the server's comment representation.
type Comment struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blog"`
	Text      string    `json:"comment"`
	User      *Profile  `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the body of PUT /auth/update-profile. Empty fields are left unchanged.
type ProfileUpdate struct {
	FullName   string `json:"fullName,omitempty"`
	Username   string `json:"username,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// BlogInput is the body of blog create and update calls.
// Tags may be given as a slice; the server also accepts a comma separated string.
type BlogInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
	Likes      *int     `json:"likes,omitempty"`
}
