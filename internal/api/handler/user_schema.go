package handler

import "time"

const dateLayout = "2006-01-02"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerUserRequest struct {
	Name           string `json:"name"           validate:"required"`
	Surname        string `json:"surname"        validate:"required"`
	Email          string `json:"email"          validate:"required,email"`
	Password       string `json:"password"       validate:"required,max=72"`
	DocumentType   string `json:"documentType"   validate:"required,document_type"`
	DocumentNumber string `json:"documentNumber" validate:"required"`
	BirthDate      string `json:"birthDate"      validate:"required,datetime=2006-01-02"`
	Address        string `json:"address"        validate:"required"`
	PhoneNumber    string `json:"phoneNumber"    validate:"required"`
	BaseSalary     *int64 `json:"baseSalary"     validate:"required,min=0,max=15000000"`
}

type emailsRequest struct {
	Emails []string `json:"emails" validate:"required,max=1000"`
}

// userResponse is returned after registration.
type userResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Email          string    `json:"email"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	BirthDate      string    `json:"birthDate"`
	Address        string    `json:"address"`
	PhoneNumber    string    `json:"phoneNumber"`
	BaseSalary     int64     `json:"baseSalary"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	RoleID         string    `json:"roleId"`
}

// userInfoResponse is returned by single-user lookups.
type userInfoResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	BaseSalary     int64  `json:"baseSalary"`
}

// userBasicInfo is one entry of a batch lookup.
type userBasicInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	BaseSalary int64  `json:"baseSalary"`
}
