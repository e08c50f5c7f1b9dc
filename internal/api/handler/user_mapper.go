package handler

import (
	"fmt"
	"time"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

// toRegisterInput converts a validated request into the service DTO.
func toRegisterInput(req registerUserRequest) (ports.RegisterUserInput, error) {
	docType, err := domain.ParseDocumentType(req.DocumentType)
	if err != nil {
		return ports.RegisterUserInput{}, err
	}
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return ports.RegisterUserInput{}, fmt.Errorf("%w: birthDate: %v", domain.ErrInvalidInput, err)
	}
	var salary int64
	if req.BaseSalary != nil {
		salary = *req.BaseSalary
	}
	return ports.RegisterUserInput{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Password:       req.Password,
		DocumentType:   docType,
		DocumentNumber: req.DocumentNumber,
		BirthDate:      birthDate,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		BaseSalary:     salary,
	}, nil
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		Email:          u.Email,
		DocumentType:   string(u.DocumentType),
		DocumentNumber: u.DocumentNumber,
		BirthDate:      u.BirthDate.Format(dateLayout),
		Address:        u.Address,
		PhoneNumber:    u.PhoneNumber,
		BaseSalary:     u.BaseSalary,
		Active:         u.Active,
		CreatedAt:      u.CreatedAt,
		RoleID:         u.RoleID,
	}
}

func toUserInfoResponse(u *domain.User) userInfoResponse {
	return userInfoResponse{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		Email:          u.Email,
		DocumentType:   string(u.DocumentType),
		DocumentNumber: u.DocumentNumber,
		Address:        u.Address,
		PhoneNumber:    u.PhoneNumber,
		BaseSalary:     u.BaseSalary,
	}
}

func toBasicInfo(users []*domain.User) []userBasicInfo {
	out := make([]userBasicInfo, 0, len(users))
	for _, u := range users {
		out = append(out, userBasicInfo{
			ID:         u.ID,
			Name:       u.Name,
			Surname:    u.Surname,
			Email:      u.Email,
			BaseSalary: u.BaseSalary,
		})
	}
	return out
}
