package constants_test

import (
	"fmt"
	"net/http"

	"github.com/agentstation/labelsync/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	// HTTP client with default timeout
	client := &http.Client{
		Timeout: constants.DefaultHTTPTimeout,
	}
	fmt.Printf("HTTP timeout: %v\n", client.Timeout)

	// Labels are listed page by page
	fmt.Printf("Page size: %d\n", constants.DefaultPageSize)

	// Output:
	// HTTP timeout: 30s
	// Page size: 100
}

// Example_defaults shows the built-in endpoint and template defaults
func Example_defaults() {
	fmt.Printf("Endpoint: %s\n", constants.DefaultEndpoint)
	fmt.Printf("Template: %s\n", constants.DefaultTemplateFile)

	// Output:
	// Endpoint: https://api.github.com
	// Template: labels.yaml
}
