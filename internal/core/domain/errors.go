package domain

import "errors"

// Business-rule outcomes. Callers handle them as expected conditions.
var (
	ErrInvalidCredentials     = errors.New("correo electronico o contraseña incorrectos")
	ErrEmailAlreadyRegistered = errors.New("la direccion del correo electronico ya esta registrada")
	ErrDocumentAlreadyExists  = errors.New("el número de documento ya existe")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrRoleNotFound           = errors.New("rol no encontrado")
	ErrInvalidInput           = errors.New("petición malformada")
)

// Catalogue codes exposed to API clients.
const (
	CodeInvalidCredentials     = "AUTH_001"
	CodeEmailAlreadyRegistered = "USR_001"
	CodeUserNotFound           = "USR_004"
	CodeRoleNotFound           = "ROL_001"
	CodeDocumentAlreadyExists  = "DOC_001"
	CodeBadRequest             = "GEN_002"
	CodeInternal               = "GEN_500"
)

var businessErrors = []struct {
	err  error
	code string
}{
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrEmailAlreadyRegistered, CodeEmailAlreadyRegistered},
	{ErrDocumentAlreadyExists, CodeDocumentAlreadyExists},
	{ErrUserNotFound, CodeUserNotFound},
	{ErrRoleNotFound, CodeRoleNotFound},
	{ErrInvalidInput, CodeBadRequest},
}

// Code returns the catalogue code for err, or CodeInternal when err carries no
// business meaning.
func Code(err error) string {
	for _, be := range businessErrors {
		if errors.Is(err, be.err) {
			return be.code
		}
	}
	return CodeInternal
}

// IsBusiness reports whether err is one of the expected business outcomes.
func IsBusiness(err error) bool {
	return Code(err) != CodeInternal
}
