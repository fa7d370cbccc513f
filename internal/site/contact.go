package site

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Field length limits, in characters
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxSubjectLength = 150
	MaxMessageLength = 5000
)

// ContactForm is a submission of the contact form
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// FieldErrors maps a form field to its error message
type FieldErrors map[string]string

// Normalize trims surrounding whitespace from every field
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
}

// Validate returns the errors of each invalid field, or nil
func (f ContactForm) Validate() FieldErrors {
	errs := FieldErrors{}

	checkText(errs, "name", "Name", f.Name, MaxNameLength)
	checkText(errs, "subject", "Subject", f.Subject, MaxSubjectLength)
	checkText(errs, "message", "Message", f.Message, MaxMessageLength)

	switch {
	case f.Email == "":
		errs["email"] = "Email is required"
	case utf8.RuneCountInString(f.Email) > MaxEmailLength:
		errs["email"] = "Email is too long"
	default:
		addr, err := mail.ParseAddress(f.Email)
		if err != nil || addr.Address != f.Email {
			errs["email"] = "Enter a valid email address"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkText(errs FieldErrors, field, label, value string, limit int) {
	if value == "" {
		errs[field] = label + " is required"
		return
	}
	if utf8.RuneCountInString(value) > limit {
		errs[field] = label + " is too long"
	}
}
