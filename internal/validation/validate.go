package validation

import (
	"regexp"
	"strings"

	"github.com/spec-kit/user-service/pkg/errorutil"
)

// emailShape accepts local@domain.tld: ASCII, one @, a dot after it,
// no embedded whitespace. Deliverability is the mail system's problem.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserInput carries the mutable fields of a user payload.
type UserInput struct {
	Name    string
	Email   string
	Phone   *string
	Message *string
}

// ValidateCreate checks and normalizes a create payload. The returned
// input has the name trimmed and the email trimmed and lower-cased, so
// the store's uniqueness constraint sees a canonical value.
func ValidateCreate(in UserInput) (UserInput, error) {
	return validate(in)
}

// ValidateUpdate checks and normalizes an update payload. Updates are
// full replacements, so the rules match ValidateCreate.
func ValidateUpdate(in UserInput) (UserInput, error) {
	return validate(in)
}

func validate(in UserInput) (UserInput, error) {
	out := UserInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   in.Phone,
		Message: in.Message,
	}

	details := map[string]any{}
	if out.Name == "" {
		details["name"] = "required"
	}
	switch {
	case out.Email == "":
		details["email"] = "required"
	case !emailShape.MatchString(out.Email):
		details["email"] = "must be a valid email address"
	}

	if len(details) > 0 {
		return UserInput{}, errorutil.NewValidationError("invalid user payload", details)
	}
	return out, nil
}
