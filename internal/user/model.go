package user

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleDealer Role = "dealer"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleDealer
}

// User is a row of the users table. Password holds the bcrypt hash.
type User struct {
	ID        int
	Name      string
	ShopName  *string
	Phone     *string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}

// PublicUser is the projection of a User that may leave the service.
type PublicUser struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Role  Role    `json:"role"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Role:  u.Role,
		Email: u.Email,
		Phone: u.Phone,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	ShopName string
}
