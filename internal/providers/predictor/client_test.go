package predictor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GetLocationNames(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		want        []string
		wantErr     bool
		errContains string
	}{
		{
			name:   "ordered list",
			status: http.StatusOK,
			body:   `{"locations": ["1st block jayanagar", "indira nagar", "whitefield"]}`,
			want:   []string{"1st block jayanagar", "indira nagar", "whitefield"},
		},
		{
			name:   "empty list",
			status: http.StatusOK,
			body:   `{"locations": []}`,
			want:   []string{},
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        "model not loaded",
			wantErr:     true,
			errContains: "fetch returned status 500: model not loaded",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"locations": [`,
			wantErr:     true,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				if r.URL.Path != "/get_location_names" {
					t.Errorf("path = %s, want /get_location_names", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, discardLogger())
			got, err := client.GetLocationNames(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatalf("GetLocationNames() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetLocationNames() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetLocationNames() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Locations); diff != "" {
				t.Errorf("locations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_PredictHomePrice_SendsFormPayload(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/predict_home_price" {
			t.Errorf("path = %s, want /predict_home_price", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		gotForm = map[string]string{
			"total_sqft": r.PostForm.Get("total_sqft"),
			"bhk":        r.PostForm.Get("bhk"),
			"bath":       r.PostForm.Get("bath"),
			"location":   r.PostForm.Get("location"),
		}
		_, _ = io.WriteString(w, `{"estimated_price": 83.2}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", 0, discardLogger())
	resp, err := client.PredictHomePrice(context.Background(), EstimateRequest{
		TotalSqft: 1000,
		BHK:       2,
		Bath:      2,
		Location:  "Indira Nagar",
	})
	if err != nil {
		t.Fatalf("PredictHomePrice() unexpected error = %v", err)
	}

	wantForm := map[string]string{
		"total_sqft": "1000",
		"bhk":        "2",
		"bath":       "2",
		"location":   "Indira Nagar",
	}
	if diff := cmp.Diff(wantForm, gotForm); diff != "" {
		t.Errorf("form payload mismatch (-want +got):\n%s", diff)
	}
	if resp.EstimatedPrice == nil || *resp.EstimatedPrice != 83.2 {
		t.Errorf("EstimatedPrice = %v, want 83.2", resp.EstimatedPrice)
	}
}

func TestClient_PredictHomePrice_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errIs       error
		errContains string
	}{
		{
			name:        "bad request",
			status:      http.StatusBadRequest,
			body:        "unknown location",
			errContains: "fetch returned status 400",
		},
		{
			name:   "missing estimated_price",
			status: http.StatusOK,
			body:   `{}`,
			errIs:  ErrMissingEstimate,
		},
		{
			name:        "not json",
			status:      http.StatusOK,
			body:        "<html>",
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, discardLogger())
			_, err := client.PredictHomePrice(context.Background(), EstimateRequest{TotalSqft: 1, BHK: 1, Bath: 1, Location: "x"})
			if err == nil {
				t.Fatal("PredictHomePrice() expected error but got none")
			}
			if tt.errIs != nil && !errors.Is(err, tt.errIs) {
				t.Errorf("PredictHomePrice() error = %v, want %v", err, tt.errIs)
			}
			if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("PredictHomePrice() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"locations": []}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 0, discardLogger())
	_, err := client.GetLocationNames(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GetLocationNames() error = %v, want context.Canceled", err)
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	client := NewClient(addr, time.Second, discardLogger())
	_, err := client.GetLocationNames(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("GetLocationNames() error = %v, want failed to fetch", err)
	}
}
