package models

// Award defines the award/experience record based on the 'awards' table
type Award struct {
	ID             int64   `json:"id" db:"id" example:"5"`
	Name           string  `json:"name" db:"name" example:"Li"`
	StudentAccount *int64  `json:"studentAccount" example:"1001"` // Resolved from awards.student_id
	Experience     *string `json:"experience" db:"experience" example:"1st place"`
	DateAwarded    *string `json:"dateAwarded" db:"date_awarded" example:"2024-05-01"`

	StudentID *int64 `json:"-" db:"student_id"`
}
