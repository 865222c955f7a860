package shared

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type testStruct struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name          string
		body          string
		expectedError bool
		errorContains string
		expected      testStruct
	}{
		{
			name:     "valid json",
			body:     `{"title":"Capitals"}`,
			expected: testStruct{Title: "Capitals"},
		},
		{
			name:          "invalid json",
			body:          `{"title":}`,
			expectedError: true,
			errorContains: "invalid character",
		},
		{
			name:          "empty body",
			body:          "",
			expectedError: true,
			errorContains: "EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))

			var result testStruct
			err := DecodeJSON(req, &result)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type request struct {
		Category string `json:"category" validate:"required,question_category"`
	}

	tests := []struct {
		name        string
		input       request
		expectedTag string
	}{
		{name: "known category", input: request{Category: "science"}},
		{name: "capitalized geography", input: request{Category: "Geography"}},
		{name: "missing", input: request{}, expectedTag: "required"},
		{name: "wrong case", input: request{Category: "Science"}, expectedTag: "question_category"},
		{name: "unknown", input: request{Category: "politics"}, expectedTag: "question_category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.input)
			if tt.expectedTag == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrors validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			require.Len(t, validationErrors, 1)
			assert.Equal(t, "category", validationErrors[0].Field())
			assert.Equal(t, tt.expectedTag, validationErrors[0].Tag())
		})
	}
}
