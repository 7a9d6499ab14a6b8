package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"rollout-config/src/config"
)

type smokeConfig struct {
	BaseURL string `env:"SMOKE_BASE_URL" envDefault:"http://localhost:8080/dev/player_rollouts"`
}

// Simple end-to-end check against a running server
func main() {
	var cfg smokeConfig
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Printf("Error parsing environment: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Println("Testing Rollout Config API...")

	fmt.Println("\n1. Storing rollout...")
	if _, err := call(client, http.MethodPost, cfg.BaseURL+"/rollouts", map[string]interface{}{
		"key":   "smoke-exp",
		"value": map[string]interface{}{"rollout": 0.25, "comment": "smoke test"},
	}); err != nil {
		fail(err)
	}

	fmt.Println("\n2. Reading rollout...")
	if _, err := call(client, http.MethodGet, cfg.BaseURL+"/rollouts?keys=smoke-exp", nil); err != nil {
		fail(err)
	}

	fmt.Println("\n3. Creating whitelist entry...")
	body, err := call(client, http.MethodPost, cfg.BaseURL+"/whitelist", map[string]interface{}{
		"ipv4":    "10.0.0.1",
		"comment": "smoke test",
	})
	if err != nil {
		fail(err)
	}

	var created struct {
		Message struct {
			Stored struct {
				Key string `json:"key"`
			} `json:"stored"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		fail(fmt.Errorf("decode create response: %w", err))
	}

	fmt.Println("\n4. Deleting whitelist entry...")
	if _, err := call(client, http.MethodDelete, cfg.BaseURL+"/whitelist", map[string]interface{}{
		"key": created.Message.Stored.Key,
	}); err != nil {
		fail(err)
	}

	fmt.Println("\nAll checks completed successfully!")
}

func call(client *http.Client, method, url string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			fmt.Printf("Error closing response body: %v\n", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	fmt.Printf("%s response status: %d\n%s", method, resp.StatusCode, body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode)
	}
	return body, nil
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
