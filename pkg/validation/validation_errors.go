package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on forms
var FieldLabels = map[string]string{
	// Registration
	"FullName":        "Full name",
	"Email":           "Email",
	"Password":        "Password",
	"ConfirmPassword": "Confirm password",
	"CompanyName":     "Company name",
	"Industry":        "Industry",
	"CompanySize":     "Company size",
	"ContactPerson":   "Contact person",
	"PhoneNumber":     "Phone number",
	"Website":         "Website",

	// Job posting
	"Title":               "Job title",
	"Description":         "Description",
	"Location":            "Location",
	"JobType":             "Job type",
	"MinSalary":           "Minimum salary",
	"MaxSalary":           "Maximum salary",
	"Requirements":        "Requirements",
	"ApplicationDeadline": "Application deadline",

	// Application
	"Phone":          "Phone",
	"DateOfBirth":    "Date of birth",
	"Education":      "Education",
	"Experience":     "Experience",
	"ExpectedSalary": "Expected salary",
	"Skills":         "Skills",
	"PortfolioURL":   "Portfolio URL",
	"CoverLetter":    "Cover letter",

	// Review
	"AuthorName": "Name",
	"Text":       "Review",
}

var enumLabels = map[string]string{
	"full_time":  "Full time",
	"part_time":  "Part time",
	"contract":   "Contract",
	"internship": "Internship",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters.", label, param)
		}
		return fmt.Sprintf("%s must be at least %s.", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters.", label, param)
		}
		return fmt.Sprintf("%s must have at most %s entries.", label, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or more.", label, param)
	case "email":
		return fmt.Sprintf("%s is not a valid email address.", label)
	case "url":
		return fmt.Sprintf("%s is not a valid URL.", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, formatOneOfOptions(param))
	case "job_type":
		return fmt.Sprintf("%s must be one of: %s.", label, formatOneOfOptions("full_time part_time contract internship"))
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and . ' - /", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be 7 to 15 digits, optionally starting with +.", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or symbols.", label)
	case "eqfield":
		return fmt.Sprintf("%s must match %s.", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

func formatOneOfOptions(param string) string {
	options := strings.Fields(param)
	for i, opt := range options {
		if label, ok := enumLabels[opt]; ok {
			options[i] = label
		}
	}
	return strings.Join(options, ", ")
}
