package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLoggerMiddlewareSetsRequestId(t *testing.T) {
	middleware := GetRequestLoggerMiddleware(GetNoopServiceLog())
	var observedRequestId string
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observedRequestId, _ = r.Context().Value(HttpContextRequestId).(string)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), request)
	if observedRequestId == "" {
		t.Errorf("expected a request id to be set on the context")
	}

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Trace-Id", "trace-me")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	if observedRequestId != "trace-me" {
		t.Errorf("expected the X-Trace-Id header to be used as the request id, got %s", observedRequestId)
	}
}

func TestBearerAuthMiddleware(t *testing.T) {
	middleware := GetBearerAuthMiddleware(GetNoopServiceLog(), "sekret")
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without a token, got %v", recorder.Code)
	}

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer wrong")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("expected status 403 with a wrong token, got %v", recorder.Code)
	}

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer sekret")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200 with the right token, got %v", recorder.Code)
	}
}
