package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Age      int    `json:"age,omitempty" validate:"omitempty,gte=18"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      signup
		wantFields []string
	}{
		{
			name:  "valid",
			input: signup{FullName: "Jane", Email: "jane@example.com", Password: "secret1"},
		},
		{
			name:       "everything missing",
			input:      signup{},
			wantFields: []string{"fullName", "email", "password"},
		},
		{
			name:       "bad email and short password",
			input:      signup{FullName: "Jane", Email: "nope", Password: "123"},
			wantFields: []string{"email", "password"},
		},
		{
			name:       "too young",
			input:      signup{FullName: "Jane", Email: "jane@example.com", Password: "secret1", Age: 12},
			wantFields: []string{"age"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs Errors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestErrorsHelpers(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.Err())

	errs = errs.Add("rating", "must be between 1 and 5")
	err := errs.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating: must be between 1 and 5")
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("email", "a@b.co", "required,email"))

	err := Var("email", "not-an-email", "required,email")
	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, Errors{{Field: "email", Message: "must be a valid email"}}, verrs)
}
