package validation

// ValidatePost checks a post or comment body. Both share the same length rule.
func ValidatePost(text string) Errors {
	errs := Errors{}

	if isEmpty(text) {
		errs["text"] = "Text field is required"
	} else if !lengthBetween(text, 10, 300) {
		errs["text"] = "Post must be between 10 and 300 characters"
	}

	return errs
}
