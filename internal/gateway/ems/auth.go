package ems

import (
	"context"
	"net/http"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/validator"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. Password policy and hashing
// are the backend's business; this side only forwards.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "A valid email is required"})
	}
	if validator.IsEmpty(password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	}
	if len(errs) > 0 {
		return "", errs
	}

	var data loginData
	if err := c.do(ctx, http.MethodPost, "/users/login", loginRequest{Email: email, Password: password}, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}
