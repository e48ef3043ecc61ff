package validation

import (
	"errors"
	"testing"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolationsEmptyIsNil(t *testing.T) {
	t.Parallel()
	var v Violations
	assert.NoError(t, v.Err())
}

func TestViolationsCollectAll(t *testing.T) {
	t.Parallel()
	var v Violations
	v.Require("name", "  ", "Name is required")
	v.Email("email", "not-an-email")
	v.Password("password", "short")

	err := v.Err()
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidationFailed, appErr.Code)
	require.Len(t, appErr.Fields, 3, "all violations reported, not just the first")
	assert.Equal(t, "name", appErr.Fields[0].Param)
	assert.Equal(t, "email", appErr.Fields[1].Param)
	assert.Equal(t, "password", appErr.Fields[2].Param)
}

func TestEmailAccepted(t *testing.T) {
	t.Parallel()
	for _, email := range []string{"a@x.com", "first.last+tag@sub.example.co"} {
		var v Violations
		v.Email("email", email)
		assert.NoError(t, v.Err(), email)
	}
}

func TestPasswordBoundary(t *testing.T) {
	t.Parallel()
	var v Violations
	v.Password("password", "123456")
	assert.NoError(t, v.Err())

	v.Password("password", "12345")
	assert.Error(t, v.Err())
}
