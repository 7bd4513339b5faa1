package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// Role names a user may carry. Roles are stored as a comma-joined list
// constrained to exactly this vocabulary.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var rolesPattern = regexp.MustCompile(`^(Admin|User)(,(Admin|User))*$`)

// User is the account aggregate. Instances are transient: built from a wire
// model or a storage row, validated, persisted, and discarded. After
// construction only the password hash may be set, so the hash is computed
// only once the raw password has been verified non-empty.
type User struct {
	ID           uuid.UUID
	UserName     string
	PasswordHash string
	Roles        string
}

// NewUserFromModel builds a User from its wire model. The password hash is
// not carried over; callers set it explicitly via SetPasswordHash.
func NewUserFromModel(m UserModel) *User {
	u := &User{
		ID:       m.ID,
		UserName: m.UserName,
		Roles:    m.Roles,
	}
	u.SetPasswordHash(m.PasswordHash)
	return u
}

// SetPasswordHash is the only mutation allowed after construction.
func (u *User) SetPasswordHash(hash string) {
	u.PasswordHash = hash
}

// Model projects the entity to its wire shape. The transient plaintext
// password is never part of the projection.
func (u *User) Model() UserModel {
	return UserModel{
		ID:           u.ID,
		UserName:     u.UserName,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
	}
}

// Validate runs the full rule list and returns every violation in
// declaration order. An empty result means the entity may be persisted.
func (u *User) Validate() []string {
	return runRules([]rule{
		{func() bool { return u.ID != uuid.Nil }, "User Id could not be empty."},
		{func() bool { return u.UserName != "" }, "User UserName could not be empty."},
		{func() bool { return u.PasswordHash != "" }, "User PasswordHash could not be empty."},
		{func() bool { return u.Roles != "" }, "User Roles could not be empty."},
		{func() bool { return rolesPattern.MatchString(u.Roles) },
			"Roles must only contain 'Admin' and 'User' separated by commas."},
	})
}

// IsValid reports whether Validate yields no violations.
func (u *User) IsValid() bool {
	return len(u.Validate()) == 0
}
