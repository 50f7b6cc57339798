package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbe(t *testing.T) {
	cases := map[string]struct {
		code    int
		body    string
		healthy bool
	}{
		"success":   {http.StatusOK, `{"status":"success","message":"staging"}`, true},
		"bad state": {http.StatusOK, `{"status":"degraded"}`, false},
		"not json":  {http.StatusOK, `ok`, false},
		"500":       {http.StatusInternalServerError, `{"status":"success"}`, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			err := probe(&http.Client{Timeout: time.Second}, ts.URL+"/healthchecker")
			if tc.healthy {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProbeUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()
	assert.Error(t, probe(&http.Client{Timeout: time.Second}, url))
}
