package handlers

import (
	"net/mail"
	"strings"
)

type CustomerValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCustomer(c CheckoutRequest) []CustomerValidationError {
	errs := []CustomerValidationError{}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, CustomerValidationError{Field: "Email", Description: "Email is required"})
	} else if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != strings.TrimSpace(c.Email) {
		errs = append(errs, CustomerValidationError{Field: "Email", Description: "Email is invalid"})
	}
	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, CustomerValidationError{Field: "FirstName", Description: "First name is required"})
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, CustomerValidationError{Field: "LastName", Description: "Last name is required"})
	}
	if strings.TrimSpace(c.Address) == "" {
		errs = append(errs, CustomerValidationError{Field: "Address", Description: "Address is required"})
	}
	if strings.TrimSpace(c.City) == "" {
		errs = append(errs, CustomerValidationError{Field: "City", Description: "City is required"})
	}
	if strings.TrimSpace(c.ZipCode) == "" {
		errs = append(errs, CustomerValidationError{Field: "ZipCode", Description: "ZIP code is required"})
	}
	return errs
}
