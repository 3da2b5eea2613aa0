package student

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken = errors.New("invalid or expired access token")

	expirationDelta = 7 * 24 * time.Hour
)

// Claims represents the authorization claims transmitted via a JWT access token.
type Claims struct {
	jwt.StandardClaims
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Branch    string   `json:"branch,omitempty"`
	Semester  int      `json:"semester,omitempty"`
	IsStudent bool     `json:"is_student,omitempty"` // -> STUDENT PORTAL
	IsFaculty bool     `json:"is_faculty,omitempty"` // -> FACULTY PORTAL
	IsAdmin   bool     `json:"is_admin,omitempty"`   // -> ADMIN PORTAL
	Roles     []string `json:"roles,omitempty"`
}

func GetStudentClaims(appName string, std Student) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    appName,
			Subject:   std.ID,
			Audience:  "CampusVoice",
			ExpiresAt: now.Add(expirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:      std.Name,
		Email:     std.Email,
		Branch:    std.Branch,
		Semester:  std.Semester,
		IsStudent: std.IsStudent(),
		IsFaculty: std.IsFaculty(),
		IsAdmin:   std.IsAdmin(),
		Roles:     std.Roles,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ResolveStudent parses a signed access token and rebuilds the Student profile
// transmitted in its claims. The portal backend issues the token at login;
// this is the only identity source the submission pipeline accepts.
func ResolveStudent(tokenStr string, secretKey []byte) (Student, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return Student{}, ErrInvalidToken
	}
	return Student{
		ID:       claims.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		Branch:   claims.Branch,
		Semester: claims.Semester,
		IsActive: true,
		Roles:    claims.Roles,
	}, nil
}
