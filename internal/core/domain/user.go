package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentType is the kind of identity document a user registers with.
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentCC       DocumentType = "CC"
	DocumentCE       DocumentType = "CE"
	DocumentPassport DocumentType = "PASSPORT"
	DocumentNIT      DocumentType = "NIT"
)

var documentTypes = map[DocumentType]struct{}{
	DocumentDNI:      {},
	DocumentCC:       {},
	DocumentCE:       {},
	DocumentPassport: {},
	DocumentNIT:      {},
}

// ParseDocumentType normalises s (trim + upper case) and checks it against the
// supported document types.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := documentTypes[dt]; !ok {
		return "", fmt.Errorf("%w: unsupported document type %q", ErrInvalidInput, s)
	}
	return dt, nil
}

// User models a back-office account.
type User struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Surname        string       `json:"surname"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`
	BirthDate      time.Time    `json:"birthDate"`
	Address        string       `json:"address"`
	PhoneNumber    string       `json:"phoneNumber"`
	BaseSalary     int64        `json:"baseSalary"`
	Active         bool         `json:"active"`
	CreatedAt      time.Time    `json:"createdAt"`
	LastLoginAt    time.Time    `json:"lastLoginAt"`
	RoleID         string       `json:"roleId"`
}

func (u *User) Activate() {
	u.Active = true
}

func (u *User) MarkCreated(now time.Time) {
	u.CreatedAt = now
}

func (u *User) MarkLastLogin(now time.Time) {
	u.LastLoginAt = now
}

func (u *User) AssignRole(roleID string) {
	u.RoleID = roleID
}

// FullName is the display name embedded in access tokens.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.Name, u.Surname)
}
