package validation

// ProfileFields carries the validatable subset of a profile payload.
type ProfileFields struct {
	Handle    string
	Status    string
	Skills    string
	Website   string
	Youtube   string
	Twitter   string
	Facebook  string
	Linkedin  string
	Instagram string
}

// ValidateProfile checks a profile create/update payload. Skills arrives as
// the raw comma-separated string so emptiness is judged before splitting.
func ValidateProfile(f ProfileFields) Errors {
	errs := Errors{}

	if isEmpty(f.Handle) {
		errs["handle"] = "Profile handle is required"
	} else if !lengthBetween(f.Handle, 2, 40) {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}

	if isEmpty(f.Status) {
		errs["status"] = "Status field is required"
	}

	if isEmpty(f.Skills) {
		errs["skills"] = "Skills field is required"
	}

	checkURL(errs, "website", f.Website)
	checkURL(errs, "youtube", f.Youtube)
	checkURL(errs, "twitter", f.Twitter)
	checkURL(errs, "facebook", f.Facebook)
	checkURL(errs, "linkedin", f.Linkedin)
	checkURL(errs, "instagram", f.Instagram)

	return errs
}

// ValidateExperience checks an experience payload.
func ValidateExperience(title, company, from string) Errors {
	errs := Errors{}

	if isEmpty(title) {
		errs["title"] = "Job title field is required"
	}
	if isEmpty(company) {
		errs["company"] = "Company field is required"
	}
	if isEmpty(from) {
		errs["from"] = "From date field is required"
	} else if !validDate(from) {
		errs["from"] = "From date must be formatted YYYY-MM-DD"
	}

	return errs
}

// ValidateEducation checks an education payload.
func ValidateEducation(school, degree, fieldOfStudy, from string) Errors {
	errs := Errors{}

	if isEmpty(school) {
		errs["school"] = "School field is required"
	}
	if isEmpty(degree) {
		errs["degree"] = "Degree field is required"
	}
	if isEmpty(fieldOfStudy) {
		errs["fieldofstudy"] = "Field of study field is required"
	}
	if isEmpty(from) {
		errs["from"] = "From date field is required"
	} else if !validDate(from) {
		errs["from"] = "From date must be formatted YYYY-MM-DD"
	}

	return errs
}
