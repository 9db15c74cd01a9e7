//go:build unit

package builder

import (
	"github.com/ngoclaithe/camerental/domain/customer"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID    uuid.UUID
	Name  string
	Phone string
	Email string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:    uuid.New(),
		Name:  "Tran Thi B",
		Phone: "0901234567",
		Email: "tranb@example.com",
	}
}

func (c *CustomerBuilder) WithName(name string) *CustomerBuilder {
	c.Name = name
	return c
}

func (c *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	c.Phone = phone
	return c
}

func (c *CustomerBuilder) Build() customer.Customer {
	return customer.Customer{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}

func (c *CustomerBuilder) BuildForm() customer.Form {
	return customer.Form{
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}
