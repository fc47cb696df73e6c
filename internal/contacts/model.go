package contacts

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ContactSubmission is one accepted contact-form message. ID and CreatedAt
// are assigned by the repository; submissions are immutable once stored.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateContactRequest is the request body for a contact-form submission.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FieldError describes a single failed constraint on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates per-field errors for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "invalid contact request: " + strings.Join(parts, "; ")
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks every field and returns a *ValidationError carrying one
// entry per failed field, or nil when the request is acceptable.
func (r *CreateContactRequest) Validate() error {
	var fields []FieldError

	name := strings.TrimSpace(r.Name)
	switch {
	case utf8.RuneCountInString(name) < 2:
		fields = append(fields, FieldError{"name", "name must be at least 2 characters"})
	case utf8.RuneCountInString(name) > 50:
		fields = append(fields, FieldError{"name", "name must be at most 50 characters"})
	case !nameRe.MatchString(name):
		fields = append(fields, FieldError{"name", "name may only contain letters and spaces"})
	}

	email := strings.TrimSpace(r.Email)
	switch {
	case email == "":
		fields = append(fields, FieldError{"email", "email is required"})
	case utf8.RuneCountInString(email) > 100:
		fields = append(fields, FieldError{"email", "email must be at most 100 characters"})
	case !emailRe.MatchString(email):
		fields = append(fields, FieldError{"email", "email must be a valid address"})
	}

	subject := strings.TrimSpace(r.Subject)
	switch {
	case utf8.RuneCountInString(subject) < 5:
		fields = append(fields, FieldError{"subject", "subject must be at least 5 characters"})
	case utf8.RuneCountInString(subject) > 100:
		fields = append(fields, FieldError{"subject", "subject must be at most 100 characters"})
	}

	message := strings.TrimSpace(r.Message)
	switch {
	case utf8.RuneCountInString(message) < 10:
		fields = append(fields, FieldError{"message", "message must be at least 10 characters"})
	case utf8.RuneCountInString(message) > 1000:
		fields = append(fields, FieldError{"message", "message must be at most 1000 characters"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
