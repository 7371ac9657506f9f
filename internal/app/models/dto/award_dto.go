package dto

import "github.com/yigit/studentrecords/internal/app/models"

// AwardRequest is used for both creation and full replacement of an award.
// Any client-supplied id is ignored; ids are generated by the database.
type AwardRequest struct {
	Name           string  `json:"name" binding:"required,notblank,max=100" example:"Li"`
	StudentAccount *int64  `json:"studentAccount,omitempty" binding:"omitempty,gt=0" example:"1001"`
	Experience     *string `json:"experience,omitempty" example:"1st place"`
	DateAwarded    *string `json:"dateAwarded,omitempty" binding:"omitempty,max=50" example:"2024-05-01"`
}

// ToModel maps the request onto an Award with the given id (0 for new awards).
func (r *AwardRequest) ToModel(id int64) *models.Award {
	return &models.Award{
		ID:             id,
		Name:           r.Name,
		StudentAccount: r.StudentAccount,
		Experience:     r.Experience,
		DateAwarded:    r.DateAwarded,
	}
}
