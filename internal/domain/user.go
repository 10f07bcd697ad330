package domain

import (
	"context"
	"time"
)

// User is a registered account holder.
type User struct {
	ID           int64
	Name         PersonName
	Email        EmailAddress
	PasswordHash string
	CreatedAt    time.Time
}

// UnvalidatedUserProfile is raw profile input as received at the boundary.
type UnvalidatedUserProfile struct {
	Name       string `json:"name"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// UserProfile is a validated user profile. It reuses the shared value
// objects, so its normalization matches addresses and customer info.
type UserProfile struct {
	Name       PersonName
	PostalCode PostalCode
	Phone      PhoneNumber
}

// ValidateUserProfile validates name, then postal code, then phone,
// returning on the first failure.
func ValidateUserProfile(raw UnvalidatedUserProfile) (UserProfile, error) {
	name, err := NewPersonName(raw.Name)
	if err != nil {
		return UserProfile{}, err
	}
	postalCode, err := NewPostalCode(raw.PostalCode)
	if err != nil {
		return UserProfile{}, err
	}
	phone, err := NewPhoneNumber(raw.Phone)
	if err != nil {
		return UserProfile{}, err
	}
	return UserProfile{Name: name, PostalCode: postalCode, Phone: phone}, nil
}

// UserRepository is the port to user persistence.
type UserRepository interface {
	Create(ctx context.Context, user User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// UserService handles account registration and authentication.
type UserService interface {
	// Register validates the input, hashes the password, and stores the
	// user. Returns ECONFLICT when the email is already taken.
	Register(ctx context.Context, name, email, password string) (*User, error)

	// Authenticate verifies the password for the given email.
	Authenticate(ctx context.Context, email, password string) (*User, error)
}
