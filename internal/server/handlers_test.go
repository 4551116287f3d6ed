package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passguard/internal/common"
	"passguard/internal/strength"
)

func TestCreateAssessmentHandler(t *testing.T) {
	handler := getCreateAssessmentHandler(strength.DefaultPolicy())

	request := httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(`{"password":"correct horse battery staple"}`))
	recorder := httptest.NewRecorder()
	handler(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %v", recorder.Code)
	}

	var response struct {
		Data    strength.Assessment `json:"data"`
		Success bool                `json:"success"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("expected a json response, got: %s", err)
	}
	if !response.Success {
		t.Errorf("expected a success response")
	}
	if response.Data.Rating != strength.RatingStrong {
		t.Errorf("expected a strong rating, got %s", response.Data.Rating)
	}
}

func TestCreateAssessmentHandlerEmptyPassword(t *testing.T) {
	handler := getCreateAssessmentHandler(strength.DefaultPolicy())

	request := httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(`{"password":""}`))
	recorder := httptest.NewRecorder()
	handler(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 for an empty password, got %v", recorder.Code)
	}

	var response struct {
		Data strength.Assessment `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("expected a json response, got: %s", err)
	}
	if response.Data.Rating != strength.RatingWeak {
		t.Errorf("expected a weak rating, got %s", response.Data.Rating)
	}
}

func TestCreateAssessmentHandlerMalformedBody(t *testing.T) {
	handler := getCreateAssessmentHandler(strength.DefaultPolicy())

	request := httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(`{"password":`))
	recorder := httptest.NewRecorder()
	handler(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a malformed body, got %v", recorder.Code)
	}

	var response common.HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("expected a json response, got: %s", err)
	}
	if response.Success {
		t.Errorf("expected a failure response")
	}
}
