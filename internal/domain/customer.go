package domain

import (
	"regexp"
	"strings"
)

// MaxPersonNameLength is the maximum person name length in runes after trimming.
const MaxPersonNameLength = 100

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^0\d{9,10}$`)
)

// PersonName is a person's name, 1 to 100 characters after trimming.
type PersonName struct {
	value string
}

func NewPersonName(raw string) (PersonName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PersonName{}, Errorf(EEMPTYFIELD, "personname.new", "name must not be empty")
	}
	if len([]rune(trimmed)) > MaxPersonNameLength {
		return PersonName{}, Errorf(ETOOLONG, "personname.new", "name must be at most %d characters", MaxPersonNameLength)
	}
	return PersonName{value: trimmed}, nil
}

func (n PersonName) String() string {
	return n.value
}

// EmailAddress is a validated email address.
type EmailAddress struct {
	value string
}

func NewEmailAddress(raw string) (EmailAddress, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return EmailAddress{}, Errorf(EEMAIL, "email.new", "invalid email address: %q", raw)
	}
	return EmailAddress{value: trimmed}, nil
}

func (e EmailAddress) String() string {
	return e.value
}

// PhoneNumber is a Japanese phone number stored as bare digits.
// Input may contain hyphens or spaces; after stripping them the number
// must be 10 or 11 digits starting with 0. Hyphenation is a rendering
// concern, see Hyphenate.
type PhoneNumber struct {
	digits string
}

func NewPhoneNumber(raw string) (PhoneNumber, error) {
	stripped := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(raw))
	if !phonePattern.MatchString(stripped) {
		return PhoneNumber{}, Errorf(EPHONE, "phone.new", "phone number must be 10 or 11 digits starting with 0, got %q", raw)
	}
	return PhoneNumber{digits: stripped}, nil
}

// String returns the bare digits, e.g. "09012345678".
func (p PhoneNumber) String() string {
	return p.digits
}

// Hyphenate renders the canonical hyphenated form: 2-4-4 groups for a
// 10-digit number, 3-4-4 for an 11-digit one.
func (p PhoneNumber) Hyphenate() string {
	head := len(p.digits) - 8
	return p.digits[:head] + "-" + p.digits[head:head+4] + "-" + p.digits[head+4:]
}

// UnvalidatedCustomerInfo is raw customer input as received at the boundary.
type UnvalidatedCustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerInfo is fully validated customer contact information.
type CustomerInfo struct {
	Name  PersonName
	Email EmailAddress
	Phone PhoneNumber
}

// ValidateCustomerInfo validates name, then email, then phone, returning
// on the first failure.
func ValidateCustomerInfo(raw UnvalidatedCustomerInfo) (CustomerInfo, error) {
	name, err := NewPersonName(raw.Name)
	if err != nil {
		return CustomerInfo{}, err
	}
	email, err := NewEmailAddress(raw.Email)
	if err != nil {
		return CustomerInfo{}, err
	}
	phone, err := NewPhoneNumber(raw.Phone)
	if err != nil {
		return CustomerInfo{}, err
	}
	return CustomerInfo{Name: name, Email: email, Phone: phone}, nil
}
