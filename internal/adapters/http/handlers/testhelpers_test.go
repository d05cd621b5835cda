package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/jsoncodec"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleBinding() binding.Record {
	return binding.Record{
		ID:        "test-service-instance-name",
		Label:     "solace-messaging",
		Hosts:     []string{"tcp://192.168.1.50:7000"},
		Namespace: "sample-msg-vpn",
		Username:  "sample-client-username",
		Password:  "sample-client-password",
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := jsoncodec.Decode(rec.Body, &result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
