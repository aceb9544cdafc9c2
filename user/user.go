package user

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingField is returned when a field a caller dereferences is absent.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned when a field is present but unusable.
	ErrInvalidField = errors.New("invalid field")

	// ErrDuplicateID is returned when two users share an identifier.
	ErrDuplicateID = errors.New("duplicate user id")
)

// User is a person shown by the box builders.
// ID and DateOfBirth are optional.
type User struct {
	ID          *int64     `yaml:"id,omitempty"`
	FirstName   string     `yaml:"first_name" validate:"required"`
	LastName    string     `yaml:"last_name" validate:"required"`
	DateOfBirth *time.Time `yaml:"date_of_birth,omitempty"`
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RequiredID returns the identifier or ErrMissingField.
func (u User) RequiredID() (int64, error) {
	if u.ID == nil {
		return 0, fmt.Errorf("%w: id of %q", ErrMissingField, u.FullName())
	}
	return *u.ID, nil
}

// RequiredDateOfBirth returns the date of birth or ErrMissingField.
func (u User) RequiredDateOfBirth() (time.Time, error) {
	if u.DateOfBirth == nil {
		return time.Time{}, fmt.Errorf("%w: date_of_birth of %q", ErrMissingField, u.FullName())
	}
	return *u.DateOfBirth, nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks that required fields are present.
func (u User) Validate() error {
	if err := structValidator().Struct(u); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("%w: %v", ErrMissingField, fields)
		}
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	return nil
}

// New returns a user with the given identifier.
func New(id int64, firstName, lastName string) User {
	return User{ID: &id, FirstName: firstName, LastName: lastName}
}

// WithDateOfBirth returns a copy of u with the date of birth set.
func (u User) WithDateOfBirth(dob time.Time) User {
	u.DateOfBirth = &dob
	return u
}
