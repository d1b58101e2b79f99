package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"garageFront/internal/handlers"
)

func TestRequestCountedOnce(t *testing.T) {
	app := &application{
		infoLog:       log.New(io.Discard, "", 0),
		errorLog:      log.New(io.Discard, "", 0),
		metrics:       NewMetrics(),
		garageHandler: &handlers.GarageHandler{},
	}

	srv := httptest.NewServer(app.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/slots")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	got := testutil.ToFloat64(app.metrics.RequestsTotal.WithLabelValues(http.MethodGet))
	if got != 1 {
		t.Fatalf("one GET request, counter = %v", got)
	}
}
