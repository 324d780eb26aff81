package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"app error", NotFound("No recommendations found"), CodeNotFound, http.StatusNotFound},
		{"wrapped app error", fmt.Errorf("lookup: %w", InvalidCategory(nil)), CodeInvalidCategory, http.StatusBadRequest},
		{"plain error", errors.New("boom"), CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsAppError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", got.Code, tt.wantCode)
			}
			if GetHTTPStatus(tt.err) != tt.wantStatus {
				t.Errorf("GetHTTPStatus = %d, want %d", GetHTTPStatus(tt.err), tt.wantStatus)
			}
		})
	}
}

func TestPersistenceFailure_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := PersistenceFailure("Failed to update style profile", cause)

	if !errors.Is(err, cause) {
		t.Error("PersistenceFailure should unwrap to its cause")
	}
	if err.Message != "Failed to update style profile" {
		t.Errorf("Message = %q", err.Message)
	}
	if !IsCode(err, CodePersistenceFailure) {
		t.Error("IsCode should match PERSISTENCE_FAILURE")
	}
}

func TestInvalidCategory_Details(t *testing.T) {
	valid := []string{"Hoodie – Olive Green"}
	err := InvalidCategory(valid)

	got, ok := err.Details["validCategories"].([]string)
	if !ok || len(got) != 1 {
		t.Fatalf("validCategories detail = %#v", err.Details["validCategories"])
	}
}
