package models

// User defines the user model based on the 'users' table
type User struct {
	UserID    string   `json:"user_id" db:"user_id"`
	FirstName string   `json:"first_name" db:"first_name"`
	LastName  string   `json:"last_name" db:"last_name"`
	Email     string   `json:"email" db:"email"`
	Password  string   `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Status    string   `json:"status" db:"status"`
	Role      RoleType `json:"role" db:"role"`
}

// FullName returns the user's display name as shown in transaction listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
