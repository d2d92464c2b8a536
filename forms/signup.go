package forms

import (
	"strings"

	"pulse/models"
)

type SignupForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

func (f *SignupForm) Validate() map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(f.Username) == "" {
		errors["username"] = "Username is required"
	} else if _, err := models.UserByUsername(f.Username); err == nil {
		errors["username"] = "This username is taken"
	}
	if f.Password1 == "" {
		errors["password1"] = "Password is required"
	} else if f.Password1 != f.Password2 {
		errors["password2"] = "Passwords do not match"
	}
	return errors
}
