package models

import "time"

// Local account row. KaonaviCode joins the row against the member
// record the upstream directory holds for the same employee.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	KaonaviCode  string `json:"kaonavi_code"`
	ChatworkID   string `json:"chatwork_id"`
	IsActive     bool   `json:"is_active"`
}

// Free-form profile a user maintains on top of the account row.
type Profile struct {
	UserID       string    `json:"user"`
	Nickname     string    `json:"nickname"`
	Location     string    `json:"location"`
	Hobby        string    `json:"hobby"`
	Tweet        string    `json:"tweet"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
