package web

import (
	"testing"
)

func Test_validatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{
			name:    "valid",
			phone:   "5551234567",
			wantErr: false,
		},
		{
			name:    "empty",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "too short",
			phone:   "12345",
			wantErr: true,
		},
		{
			name:    "too long",
			phone:   "55512345678",
			wantErr: true,
		},
		{
			name:    "letters",
			phone:   "555123456a",
			wantErr: true,
		},
		{
			name:    "formatted",
			phone:   "555-123-4567",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := validatePhone(tt.phone); (err != nil) != tt.wantErr {
				t.Errorf("validatePhone() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_validateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid",
			email:   "alice@example.com",
			wantErr: false,
		},
		{
			name:    "empty",
			email:   "",
			wantErr: true,
		},
		{
			name:    "no at sign",
			email:   "alice.example.com",
			wantErr: true,
		},
		{
			name:    "no domain",
			email:   "alice@",
			wantErr: true,
		},
		{
			name:    "spaces",
			email:   "alice smith@example.com",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := validateEmail(tt.email); (err != nil) != tt.wantErr {
				t.Errorf("validateEmail() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
