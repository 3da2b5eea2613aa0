package student

import (
	"strings"
	"time"
)

// Roles
const (
	RoleAdmin   = "admin:"
	RoleFaculty = "faculty:"
	RoleStudent = "student:"
)

var AllRoles = []string{RoleAdmin, RoleFaculty, RoleStudent}

// Student is a resolved portal profile. Branch and Semester are denormalized
// onto every feedback record at submission time.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Branch    string    `json:"branch"`
	Semester  int       `json:"semester"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

func (s *Student) RoleStartsWith(prefix string) bool {
	for _, role := range s.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

func (s *Student) IsAdmin() bool {
	return s.RoleStartsWith(RoleAdmin)
}

func (s *Student) IsFaculty() bool {
	return s.RoleStartsWith(RoleFaculty)
}

func (s *Student) IsStudent() bool {
	return s.RoleStartsWith(RoleStudent)
}
