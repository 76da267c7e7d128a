// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package auth

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 8

// SignUpForm holds a validated registration submission.
type SignUpForm struct {
	Username string
	Email    string
	Password string
}

// SignInForm holds a validated login submission.
type SignInForm struct {
	Username string
	Password string
}

// ParseSignUpForm validates a registration form. The first violation found
// is returned as a ValidationError; later fields are not inspected.
func ParseSignUpForm(v url.Values) (*SignUpForm, error) {
	username := strings.TrimSpace(v.Get("username"))
	if err := ValidateUsername(username); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	email := strings.TrimSpace(v.Get("email"))
	if err := ValidateEmail(email); err != nil {
		return nil, &ValidationError{Message: "Please enter a valid email address."}
	}

	password := v.Get("password")
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, &ValidationError{Message: "Password must be at least 8 characters."}
	}
	if v.Get("confirm") != password {
		return nil, &ValidationError{Message: "Passwords do not match."}
	}

	if v.Get("acceptTerms") != "on" {
		return nil, &ValidationError{Message: "You must accept the terms to sign up."}
	}

	return &SignUpForm{
		Username: username,
		Email:    strings.ToLower(email),
		Password: password,
	}, nil
}

// ParseSignInForm validates a login form.
func ParseSignInForm(v url.Values) (*SignInForm, error) {
	username := strings.TrimSpace(v.Get("username"))
	password := v.Get("password")
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "Username and password are required."}
	}
	return &SignInForm{Username: username, Password: password}, nil
}
