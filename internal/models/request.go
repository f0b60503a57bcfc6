package models

import "fmt"

// CanvasRequest is the body of POST /process-data.
type CanvasRequest struct {
	UserInput string `json:"user_input"`
	Language  string `json:"language"`
}

// Validate checks the request fields. The language code is validated separately
// by ParseLanguage so that the error carries the supported set.
func (r *CanvasRequest) Validate() error {
	if r.UserInput == "" {
		return fmt.Errorf("user_input cannot be empty")
	}
	if _, err := ParseLanguage(r.Language); err != nil {
		return err
	}
	return nil
}

// CanvasResponse is the success body: the extracted section map serialized as a
// JSON object and embedded as a string value. The double encoding is part of
// the wire contract.
type CanvasResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
