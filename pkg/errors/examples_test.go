package errors_test

import (
	"fmt"

	"github.com/agentstation/labelsync/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	// A 404 from the labels API maps to the not found sentinel
	err := errors.NewAPIError("api.github.com", 404, "Not Found")

	if errors.IsNotFound(err) {
		fmt.Println("Label not found")
	}

	// Output: Label not found
}

// Example_aPIError demonstrates API error handling.
func Example_aPIError() {
	err := &errors.APIError{
		Host:       "api.github.com",
		Endpoint:   "https://api.github.com/repos/octo/demo/labels",
		StatusCode: 429,
		Message:    "Rate limit exceeded",
	}

	switch err.StatusCode {
	case 429:
		fmt.Println("Rate limited - retry later")
	case 401:
		fmt.Println("Authentication failed")
	case 500:
		fmt.Println("Server error")
	}

	// Output: Rate limited - retry later
}

// Example_authenticationError shows authentication error handling.
func Example_authenticationError() {
	err := &errors.AuthenticationError{
		Host:    "api.github.com",
		Method:  "bearer",
		Message: "token not configured",
	}

	fmt.Printf("Auth failed for %s: %s\n", err.Host, err.Message)

	// Output: Auth failed for api.github.com: token not configured
}

// Example_actionError shows per-action failure reporting.
func Example_actionError() {
	base := errors.NewAPIError("api.github.com", 422, "Validation Failed")
	err := errors.NewActionError("create", "bug", base)

	fmt.Println(err.Error())

	// Output: failed to create label bug: API error from api.github.com (status 422): Validation Failed
}

// Example_applyError demonstrates aggregate failure handling.
func Example_applyError() {
	errs := []error{
		errors.NewActionError("create", "bug", errors.ErrAlreadyExists),
		errors.NewActionError("delete", "wontfix", errors.ErrNotFound),
	}
	err := errors.NewApplyError(4, errs)

	fmt.Println(err.Error())
	for _, e := range err.Errs {
		fmt.Println(" -", e)
	}

	// Output:
	// apply incomplete: 2 of 4 actions failed
	//  - failed to create label bug: already exists
	//  - failed to delete label wontfix: not found
}

// Example_validationError shows input validation errors.
func Example_validationError() {
	color := "red"
	err := &errors.ValidationError{
		Field:   "color",
		Value:   color,
		Message: "must be 6 hex digits",
	}
	fmt.Println(err.Error())

	// Output: validation failed for field color: must be 6 hex digits
}

// Example_errorWrapping demonstrates error wrapping patterns.
func Example_errorWrapping() {
	originalErr := fmt.Errorf("connection refused")

	ioErr := errors.WrapIO("connect", "api.github.com", originalErr)

	apiErr := &errors.APIError{
		Host:    "api.github.com",
		Message: "failed to connect",
		Err:     ioErr,
	}

	fmt.Println(apiErr.Error())

	// Output: API error from api.github.com: failed to connect
}
