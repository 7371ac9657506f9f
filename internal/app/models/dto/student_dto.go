package dto

import "github.com/yigit/studentrecords/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name       string            `json:"name" binding:"required,notblank,max=100" example:"Li"`
	Age        *int              `json:"age,omitempty" binding:"omitempty,min=0,max=150" example:"20"`
	Position   *string           `json:"position,omitempty" binding:"omitempty,max=100" example:"leader"`
	Awards     *string           `json:"awards,omitempty" example:"ICPC bronze"`
	Account    int64             `json:"account" binding:"required,gt=0" example:"1001"`
	Pwd        *int64            `json:"pwd" binding:"required,gte=0" example:"1234"`
	PeriodNum  models.PeriodNum  `json:"periodNum" binding:"required,oneof=admin six seven eight" example:"six"`
	Department models.Department `json:"department" binding:"required,oneof=data_science full_stack cpu_os java" example:"java"`
}

// UpdateStudentRequest replaces every mutable field of a student. The account
// is taken from the path; pwd is re-hashed only when present.
type UpdateStudentRequest struct {
	Name       string            `json:"name" binding:"required,notblank,max=100" example:"Li Wei"`
	Age        *int              `json:"age,omitempty" binding:"omitempty,min=0,max=150" example:"21"`
	Position   *string           `json:"position,omitempty" binding:"omitempty,max=100" example:"captain"`
	Awards     *string           `json:"awards,omitempty" example:"ICPC silver"`
	Pwd        *int64            `json:"pwd,omitempty" binding:"omitempty,gte=0" example:"4321"`
	PeriodNum  models.PeriodNum  `json:"periodNum" binding:"required,oneof=admin six seven eight" example:"seven"`
	Department models.Department `json:"department" binding:"required,oneof=data_science full_stack cpu_os java" example:"java"`
}

// VerifyCredentialsRequest carries the credential to check for an account
type VerifyCredentialsRequest struct {
	Pwd *int64 `json:"pwd" binding:"required,gte=0" example:"1234"`
}

// VerifyCredentialsResponse is returned when the credential matches
type VerifyCredentialsResponse struct {
	Account  int64 `json:"account" example:"1001"`
	Verified bool  `json:"verified" example:"true"`
}

// ToModel maps the request onto a Student. The password hash is filled in by the service.
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:       r.Name,
		Age:        r.Age,
		Position:   r.Position,
		Awards:     r.Awards,
		Account:    r.Account,
		PeriodNum:  r.PeriodNum,
		Department: r.Department,
	}
}

// ToModel maps the request onto the student identified by account.
func (r *UpdateStudentRequest) ToModel(account int64) *models.Student {
	return &models.Student{
		Name:       r.Name,
		Age:        r.Age,
		Position:   r.Position,
		Awards:     r.Awards,
		Account:    account,
		PeriodNum:  r.PeriodNum,
		Department: r.Department,
	}
}
