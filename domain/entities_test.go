package domain

import (
	"testing"
	"time"
)

func TestOTPExpired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	otp := OTP{Code: "042137", ExpiresAt: issued.Add(5 * time.Minute)}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"just issued", issued, false},
		{"one second before expiry", issued.Add(5*time.Minute - time.Second), false},
		{"exactly at expiry", issued.Add(5 * time.Minute), false},
		{"one second past expiry", issued.Add(5*time.Minute + time.Second), true},
		{"long past expiry", issued.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := otp.Expired(tt.now); got != tt.expired {
				t.Errorf("Expired(%v) = %v, want %v", tt.now, got, tt.expired)
			}
		})
	}
}

func TestPropertyPatchEmpty(t *testing.T) {
	title := "Sunny flat"
	price := 120000.0

	tests := []struct {
		name  string
		patch PropertyPatch
		empty bool
	}{
		{"zero patch", PropertyPatch{}, true},
		{"title only", PropertyPatch{Title: &title}, false},
		{"price only", PropertyPatch{Price: &price}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}
}
