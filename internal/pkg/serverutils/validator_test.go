package serverutils

import (
	"testing"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestPasses(t *testing.T) {
	req := dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Username:  "ada",
		Password:  "password123",
	}
	assert.NoError(t, ValidateRequest(req))
}

func TestValidateRequestMissingFields(t *testing.T) {
	err := ValidateRequest(dto.CreateEntryRequest{})
	require.Error(t, err)

	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Contains(t, ae.Message, "title is required")
	assert.Contains(t, ae.Message, "content is required")
}

func TestValidateRequestBadEmail(t *testing.T) {
	err := ValidateRequest(dto.ForgotPasswordRequest{Email: "not-an-email"})
	require.Error(t, err)

	ae, _ := apperror.As(err)
	assert.Contains(t, ae.Message, "valid address")
}

func TestValidateRequestShortPassword(t *testing.T) {
	req := dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Username:  "ada",
		Password:  "short",
	}
	err := ValidateRequest(req)
	require.Error(t, err)

	ae, _ := apperror.As(err)
	assert.Contains(t, ae.Message, "password must be at least 8 characters")
}

func TestValidateRequestBadURL(t *testing.T) {
	err := ValidateRequest(dto.UpdateAvatarURLRequest{AvatarURL: "notaurl"})
	require.Error(t, err)

	ae, _ := apperror.As(err)
	assert.Contains(t, ae.Message, "valid URL")
}
