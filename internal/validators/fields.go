package validators

import "strings"

const MinPasswordLength = 6

// NonEmpty reports whether the value still has content after trimming.
func NonEmpty(v string) bool {
	return strings.TrimSpace(v) != ""
}

// NormalizeEmail trims and lowercases, the only normalization applied
// before storing an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailValid(email string) bool {
	e := strings.TrimSpace(email)
	return e != "" && strings.Contains(e, "@")
}

func IsPasswordValid(password string) bool {
	return len(password) >= MinPasswordLength
}

func IsRatingValid(rating int) bool {
	return rating >= 1 && rating <= 5
}

func IsRoleValid(role string) bool {
	return role == "CUSTOMER" || role == "RESTAURANT_OWNER"
}
