package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64      `json:"id" db:"id" example:"1"`                    // Surrogate key
	Name       string     `json:"name" db:"name" example:"Li"`               // Display name
	Age        *int       `json:"age" db:"age" example:"20"`                 // Optional
	Position   *string    `json:"position" db:"position" example:"leader"`   // Role within the program
	Awards     *string    `json:"awards" db:"awards" example:"ICPC bronze"`  // Free-text summary
	Account    int64      `json:"account" db:"account" example:"1001"`       // Business key, unique
	PeriodNum  PeriodNum  `json:"periodNum" db:"period_num" example:"six"`   // Cohort
	Department Department `json:"department" db:"department" example:"java"` // Track

	// Never serialized.
	PasswordHash string `json:"-" db:"pwd_hash"`
}
