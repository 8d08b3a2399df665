package nanolog

import "fmt"

// Result is the status value call sites inspect before logging failures:
// a numeric code, a short subsystem tag and a human-readable description.
// Code 0 means success; the code taxonomy beyond that belongs to the
// application.
type Result struct {
	Code        int    `json:"code"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// NewResult builds a Result, truncating Tag to MaxTagSize bytes and
// Description to MaxDescSize bytes.
func NewResult(code int, tag, description string) Result {
	if len(tag) > MaxTagSize {
		tag = tag[:MaxTagSize]
	}
	if len(description) > MaxDescSize {
		description = description[:MaxDescSize]
	}
	return Result{Code: code, Tag: tag, Description: description}
}

// Ok reports whether the result carries the success code.
func (r Result) Ok() bool {
	return r.Code == 0
}

// Error implements the error interface so non-OK results can travel as
// ordinary Go errors.
func (r Result) Error() string {
	return fmt.Sprintf("[%s] %d: %s", r.Tag, r.Code, r.Description)
}
