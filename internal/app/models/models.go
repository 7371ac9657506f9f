package models

import (
	"encoding/json"
	"strings"
)

// PeriodNum identifies the cohort a student belongs to
type PeriodNum string

const (
	PeriodAdmin PeriodNum = "admin"
	PeriodSix   PeriodNum = "six"
	PeriodSeven PeriodNum = "seven"
	PeriodEight PeriodNum = "eight"
)

// IsValid reports whether p is a known cohort
func (p PeriodNum) IsValid() bool {
	switch p {
	case PeriodAdmin, PeriodSix, PeriodSeven, PeriodEight:
		return true
	}
	return false
}

// UnmarshalJSON accepts any letter case ("SIX", "Six") and stores the canonical form.
func (p *PeriodNum) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = PeriodNum(normalizeEnum(s))
	return nil
}

// Department is the study track of a student
type Department string

const (
	DepartmentDataScience Department = "data_science"
	DepartmentFullStack   Department = "full_stack"
	DepartmentCPUOS       Department = "cpu_os"
	DepartmentJava        Department = "java"
)

// IsValid reports whether d is a known department
func (d Department) IsValid() bool {
	switch d {
	case DepartmentDataScience, DepartmentFullStack, DepartmentCPUOS, DepartmentJava:
		return true
	}
	return false
}

// UnmarshalJSON accepts any letter case ("JAVA", "Full_Stack") and stores the canonical form.
func (d *Department) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = Department(normalizeEnum(s))
	return nil
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
