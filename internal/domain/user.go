package domain

// Role is the marketplace privilege level of a user.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ParseRole validates a stored role value.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleSeller, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// User document fields.
const (
	UserFieldEmail    = "email"
	UserFieldRole     = "role"
	UserFieldVerified = "verified"
)

// User is a registered buyer, seller or administrator.
type User struct {
	ID       string `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string `bson:"email" json:"email"`
	Role     Role   `bson:"role" json:"role"`
	Verified bool   `bson:"verified" json:"verified"`
}

// Document converts the user into its stored form.
func (u User) Document() Document {
	doc := Document{
		UserFieldEmail:    u.Email,
		UserFieldRole:     string(u.Role),
		UserFieldVerified: u.Verified,
	}
	if u.ID != "" {
		doc[FieldID] = u.ID
	}
	return doc
}
