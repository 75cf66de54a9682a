package validator

import (
	"testing"
)

func TestValidateStruct(t *testing.T) {
	type TestStruct struct {
		Username string `validate:"required,username"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	tests := []struct {
		name     string
		input    TestStruct
		expected bool
	}{
		{
			name: "valid struct",
			input: TestStruct{
				Username: "alice_01",
				Email:    "test@example.com",
				Password: "password123",
			},
			expected: true,
		},
		{
			name: "missing required field",
			input: TestStruct{
				Username: "alice_01",
				Email:    "test@example.com",
				Password: "",
			},
			expected: false,
		},
		{
			name: "invalid email",
			input: TestStruct{
				Username: "alice_01",
				Email:    "invalid-email",
				Password: "password123",
			},
			expected: false,
		},
		{
			name: "password too short",
			input: TestStruct{
				Username: "alice_01",
				Email:    "test@example.com",
				Password: "short",
			},
			expected: false,
		},
		{
			name: "username too short",
			input: TestStruct{
				Username: "ab",
				Email:    "test@example.com",
				Password: "password123",
			},
			expected: false,
		},
		{
			name: "username with invalid characters",
			input: TestStruct{
				Username: "alice smith",
				Email:    "test@example.com",
				Password: "password123",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			isValid := err == nil

			if isValid != tt.expected {
				t.Errorf("ValidateStruct() = %v, expected %v, error: %v", isValid, tt.expected, err)
			}
		})
	}
}

func TestValidateStructIntBounds(t *testing.T) {
	type RatingStruct struct {
		Rating int `validate:"required,min=1,max=5"`
	}

	tests := []struct {
		name     string
		rating   int
		expected bool
	}{
		{"valid rating", 3, true},
		{"lowest rating", 1, true},
		{"highest rating", 5, true},
		{"zero fails required", 0, false},
		{"above maximum", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&RatingStruct{Rating: tt.rating})
			isValid := err == nil

			if isValid != tt.expected {
				t.Errorf("ValidateStruct() = %v, expected %v, error: %v", isValid, tt.expected, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"test@example.com", true},
		{"user.name@example.co.uk", true},
		{"invalid-email", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
		{"user@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			isValid := err == nil

			if isValid != tt.expected {
				t.Errorf("ValidateEmail(%q) = %v, expected %v", tt.email, isValid, tt.expected)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "hello"},
		{"hello\x00world", "helloworld"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.input); got != tt.expected {
			t.Errorf("SanitizeString(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
