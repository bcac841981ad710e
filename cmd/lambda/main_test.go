package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func Test_handleRequest(t *testing.T) {
	if err := setup(); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	body := map[string]interface{}{
		"conversation": map[string]interface{}{
			"output": map[string]interface{}{
				"text": []string{"Hello", "world"},
			},
		},
		"raw_input_data": map[string]interface{}{
			"slack": map[string]interface{}{
				"event": map[string]interface{}{
					"channel": "C123456",
					"ts":      "1234567890.123456",
				},
			},
			"conversation": map[string]interface{}{},
		},
	}

	bodyJSON, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}

	req := events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/normalize",
		Body:       string(bodyJSON),
	}

	resp, err := handleRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("Handler failed: %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("Expected status code 200, got %d", resp.StatusCode)
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Body), &out); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if out["channel"] != "C123456" {
		t.Errorf("Expected channel C123456, got %v", out["channel"])
	}
	if out["text"] != "Hello world" {
		t.Errorf("Expected text 'Hello world', got %v", out["text"])
	}
}
