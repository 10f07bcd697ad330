package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Maximum lengths for address fields, measured in runes after trimming.
const (
	MaxPrefectureLength  = 10
	MaxCityLength        = 50
	MaxAddressLineLength = 100
)

var postalCodePattern = regexp.MustCompile(`^\d{7}$`)

// PostalCode is a Japanese postal code normalized to the form "xxx-xxxx".
type PostalCode struct {
	value string
}

// NewPostalCode normalizes raw to "xxx-xxxx". Hyphens in the input are
// tolerated; after stripping them the input must be exactly 7 digits.
func NewPostalCode(raw string) (PostalCode, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if !postalCodePattern.MatchString(digits) {
		return PostalCode{}, Errorf(EPOSTALCODE, "postalcode.new", "postal code must be 7 digits, got %q", raw)
	}
	return PostalCode{value: digits[:3] + "-" + digits[3:]}, nil
}

// String returns the normalized "xxx-xxxx" form.
func (p PostalCode) String() string {
	return p.value
}

// Prefecture is a prefecture name, 1 to 10 characters after trimming.
type Prefecture struct {
	value string
}

func NewPrefecture(raw string) (Prefecture, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Prefecture{}, Errorf(EEMPTYFIELD, "prefecture.new", "prefecture must not be empty")
	}
	if len([]rune(trimmed)) > MaxPrefectureLength {
		return Prefecture{}, Errorf(ETOOLONG, "prefecture.new", "prefecture must be at most %d characters", MaxPrefectureLength)
	}
	return Prefecture{value: trimmed}, nil
}

func (p Prefecture) String() string {
	return p.value
}

// City is a city name, 1 to 50 characters after trimming.
type City struct {
	value string
}

func NewCity(raw string) (City, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return City{}, Errorf(EEMPTYFIELD, "city.new", "city must not be empty")
	}
	if len([]rune(trimmed)) > MaxCityLength {
		return City{}, Errorf(ETOOLONG, "city.new", "city must be at most %d characters", MaxCityLength)
	}
	return City{value: trimmed}, nil
}

func (c City) String() string {
	return c.value
}

// AddressLine is the street-level portion of an address, 1 to 100
// characters after trimming.
type AddressLine struct {
	value string
}

func NewAddressLine(raw string) (AddressLine, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AddressLine{}, Errorf(EEMPTYFIELD, "addressline.new", "address line must not be empty")
	}
	if len([]rune(trimmed)) > MaxAddressLineLength {
		return AddressLine{}, Errorf(ETOOLONG, "addressline.new", "address line must be at most %d characters", MaxAddressLineLength)
	}
	return AddressLine{value: trimmed}, nil
}

func (a AddressLine) String() string {
	return a.value
}

// UnvalidatedAddress is raw address input as received at the boundary.
// It carries no guarantees; pass it through ValidateAddress before use.
type UnvalidatedAddress struct {
	PostalCode  string `json:"postalCode"`
	Prefecture  string `json:"prefecture"`
	City        string `json:"city"`
	AddressLine string `json:"addressLine"`
}

// Address is a fully validated shipping address. Its fields can only be
// built through their constructors, so an Address value always satisfies
// every field invariant.
type Address struct {
	PostalCode  PostalCode
	Prefecture  Prefecture
	City        City
	AddressLine AddressLine
}

// ValidateAddress validates fields in declared order (postal code,
// prefecture, city, address line) and returns on the first failure.
// Later fields are never evaluated once an earlier one fails.
func ValidateAddress(raw UnvalidatedAddress) (Address, error) {
	postalCode, err := NewPostalCode(raw.PostalCode)
	if err != nil {
		return Address{}, err
	}
	prefecture, err := NewPrefecture(raw.Prefecture)
	if err != nil {
		return Address{}, err
	}
	city, err := NewCity(raw.City)
	if err != nil {
		return Address{}, err
	}
	addressLine, err := NewAddressLine(raw.AddressLine)
	if err != nil {
		return Address{}, err
	}
	return Address{
		PostalCode:  postalCode,
		Prefecture:  prefecture,
		City:        city,
		AddressLine: addressLine,
	}, nil
}

// String renders the address on one line, postal code first.
func (a Address) String() string {
	return fmt.Sprintf("〒%s %s%s%s", a.PostalCode, a.Prefecture, a.City, a.AddressLine)
}
