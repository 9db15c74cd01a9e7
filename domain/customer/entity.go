// Package customer models the customer directory as the dashboard sees it.
package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("customer name is required")
	ErrPhoneRequired = errors.New("customer phone is required")
)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}

// Form is the new-customer payload. Name and phone are the only mandatory
// fields; the wizard refuses to advance until both are filled.
type Form struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

func (f Form) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Phone == "" {
		return ErrPhoneRequired
	}
	return nil
}

// Matches implements the directory search box: case-insensitive name match or
// phone substring.
func (c Customer) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, query)
}
