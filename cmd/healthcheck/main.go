// Command healthcheck probes /healthchecker for container HEALTHCHECK use.
// It exits 0 only when the service answers 200 with status "success".
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/vaheed/infra-ccu-info/internal/version"
)

const defaultURL = "http://localhost:8888/healthchecker"

func main() {
	url := os.Getenv("HEALTH_URL")
	if url == "" {
		url = defaultURL
	}
	c := &http.Client{Timeout: 2 * time.Second}
	if err := probe(c, url); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func probe(c *http.Client, url string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "infra-ccu-info-healthcheck/"+version.Version)
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if body.Status != "success" {
		return fmt.Errorf("unhealthy status %q", body.Status)
	}
	return nil
}
