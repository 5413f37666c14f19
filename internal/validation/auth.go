package validation

// ValidateRegister checks a registration payload and returns field-keyed errors.
func ValidateRegister(name, email, password, password2 string) Errors {
	errs := Errors{}

	if isEmpty(name) {
		errs["name"] = "Name field is required"
	} else if !lengthBetween(name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	if isEmpty(email) {
		errs["email"] = "Email field is required"
	} else if !validEmail(email) {
		errs["email"] = "Email is invalid"
	}

	if isEmpty(password) {
		errs["password"] = "Password field is required"
	} else if !lengthBetween(password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}

	if isEmpty(password2) {
		errs["password2"] = "Confirm Password field is required"
	} else if password != password2 {
		errs["password2"] = "Passwords must match"
	}

	return errs
}

// ValidateLogin checks a login payload and returns field-keyed errors.
func ValidateLogin(email, password string) Errors {
	errs := Errors{}

	if isEmpty(email) {
		errs["email"] = "Email field is required"
	} else if !validEmail(email) {
		errs["email"] = "Email is invalid"
	}

	if isEmpty(password) {
		errs["password"] = "Password field is required"
	}

	return errs
}
