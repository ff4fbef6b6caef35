package models

import "time"

// User mirrors the identity provider's view of an account. Tokens are issued
// elsewhere; this service only resolves the bearer subject to a row here.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null;uniqueIndex"`
	IsStaff  bool   `json:"is_staff" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Actor is the identity behind a request, passed explicitly into the service
// layer. The zero value is an anonymous actor.
type Actor struct {
	UserID  *uint
	IsStaff bool
}

func (a Actor) Authenticated() bool {
	return a.UserID != nil
}
