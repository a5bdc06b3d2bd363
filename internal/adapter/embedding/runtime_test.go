package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPRuntime_Forward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req forwardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.InputIDs) != 3 || len(req.AttentionMask) != 3 {
			t.Errorf("unexpected request shape: %+v", req)
		}

		json.NewEncoder(w).Encode(forwardResponse{
			LastHiddenState: [][]float32{{1, 2}, {3, 4}, {5, 6}},
		})
	}))
	defer srv.Close()

	rt := NewHTTPRuntime(srv.URL)
	out, err := rt.Forward(context.Background(), []int64{2, 5, 3}, []int64{1, 1, 1}, []int64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if len(out.HiddenStates) != 3 {
		t.Fatalf("expected 3 hidden rows, got %d", len(out.HiddenStates))
	}
	if out.HiddenStates[1][0] != 3 {
		t.Errorf("unexpected hidden state: %v", out.HiddenStates)
	}
	if out.Pooled != nil {
		t.Errorf("expected no pooled output, got %v", out.Pooled)
	}
}

func TestHTTPRuntime_PooledOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(forwardResponse{
			Pooled: []float32{0.1, 0.2},
		})
	}))
	defer srv.Close()

	rt := NewHTTPRuntime(srv.URL)
	out, err := rt.Forward(context.Background(), []int64{2}, []int64{1}, []int64{0})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Pooled) != 2 {
		t.Errorf("expected pooled output, got %+v", out)
	}
}

func TestHTTPRuntime_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(forwardResponse{Error: "model not loaded"})
	}))
	defer srv.Close()

	rt := NewHTTPRuntime(srv.URL)
	if _, err := rt.Forward(context.Background(), []int64{2}, []int64{1}, nil); err == nil {
		t.Error("expected error for status 500")
	}
}

func TestHTTPRuntime_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(forwardResponse{})
	}))
	defer srv.Close()

	rt := NewHTTPRuntime(srv.URL)
	if _, err := rt.Forward(context.Background(), []int64{2}, []int64{1}, nil); err == nil {
		t.Error("expected error for response with no output")
	}
}

func TestHTTPRuntime_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := NewHTTPRuntime(srv.URL)
	if _, err := rt.Forward(ctx, []int64{2}, []int64{1}, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}
