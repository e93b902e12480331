package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gatekeeper/pkg/api"
)

func TestStruct_SignUpRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      api.SignUpRequest
		wantErrs []string
	}{
		{
			name: "valid request",
			req: api.SignUpRequest{
				Name:     "Ann",
				Email:    "ann@x.com",
				Password: "Secret123",
				Role:     "user",
			},
		},
		{
			name: "valid request without role",
			req: api.SignUpRequest{
				Name:     "Ann",
				Email:    "ann@x.com",
				Password: "Secret123",
			},
		},
		{
			name: "missing name",
			req: api.SignUpRequest{
				Email:    "ann@x.com",
				Password: "Secret123",
			},
			wantErrs: []string{"name is required"},
		},
		{
			name: "bad email",
			req: api.SignUpRequest{
				Name:     "Ann",
				Email:    "not-an-email",
				Password: "Secret123",
			},
			wantErrs: []string{"email must be a valid email address"},
		},
		{
			name: "short password",
			req: api.SignUpRequest{
				Name:     "Ann",
				Email:    "ann@x.com",
				Password: "short",
			},
			wantErrs: []string{"password must be at least 8 characters long"},
		},
		{
			name: "unknown role",
			req: api.SignUpRequest{
				Name:     "Ann",
				Email:    "ann@x.com",
				Password: "Secret123",
				Role:     "superuser",
			},
			wantErrs: []string{"role must be one of: user, admin"},
		},
		{
			name: "multiple errors joined with comma",
			req:  api.SignUpRequest{},
			wantErrs: []string{
				"name is required",
				"email is required",
				"password is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.req)
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
			if len(tt.wantErrs) > 1 {
				assert.Equal(t, len(tt.wantErrs)-1, strings.Count(err.Error(), ", "))
			}
		})
	}
}

func TestStruct_SignInRequest(t *testing.T) {
	err := Struct(&api.SignInRequest{Email: "ann@x.com", Password: "Secret123"})
	require.NoError(t, err)

	err = Struct(&api.SignInRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "password is required")
}
