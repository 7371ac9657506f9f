package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Account   int64  `validate:"required,gt=0"`
	PeriodNum string `validate:"required,oneof=admin six seven eight"`
}

func TestHandleValidationErrorFields(t *testing.T) {
	v := validator.New()
	err := v.Struct(sample{Account: 0, PeriodNum: "nine"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Empty(t, detail.Field)

	fields, ok := detail.Details.([]FieldError)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, FieldError{Field: "account", Message: "account is required"}, fields[0])
	assert.Equal(t, FieldError{Field: "periodNum", Message: "periodNum must be one of: admin six seven eight"}, fields[1])
}

func TestHandleValidationErrorSingleField(t *testing.T) {
	v := validator.New()
	err := v.Struct(sample{Account: 7, PeriodNum: "ten"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, "periodNum", detail.Field)
}

func TestHandleValidationErrorPlain(t *testing.T) {
	detail := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "unexpected EOF", detail.Details)
}

func TestStudentRequestToModel(t *testing.T) {
	pwd := int64(1234)
	req := CreateStudentRequest{Name: "Li", Account: 1001, Pwd: &pwd, PeriodNum: "six", Department: "java"}

	m := req.ToModel()
	assert.Equal(t, "Li", m.Name)
	assert.Equal(t, int64(1001), m.Account)
	assert.Empty(t, m.PasswordHash)

	upd := UpdateStudentRequest{Name: "Li Wei", PeriodNum: "seven", Department: "cpu_os"}
	m = upd.ToModel(1001)
	assert.Equal(t, int64(1001), m.Account)
	assert.Equal(t, "Li Wei", m.Name)
}
