package model

import "time"

// Company is an organization record in the companies collection.
// Employees and Revenue decode fail-soft because the original data files
// hold both numbers and numeric strings for them.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Website   string    `json:"website"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Employees Amount    `json:"employees"`
	Revenue   Amount    `json:"revenue"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyPatch carries the client-editable fields of a Company.
type CompanyPatch struct {
	Name      *string `json:"name"`
	Industry  *string `json:"industry"`
	Website   *string `json:"website"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Employees *Amount `json:"employees"`
	Revenue   *Amount `json:"revenue"`
}

func (c *Company) RecordID() string { return c.ID }

func (c *Company) Stamp(id, createdBy string, now time.Time) {
	c.ID = id
	c.CreatedBy = createdBy
	c.CreatedAt = now
	c.UpdatedAt = now
}

func (c *Company) Touch(now time.Time) { c.UpdatedAt = now }

func (c *Company) Apply(p CompanyPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Employees != nil {
		c.Employees = *p.Employees
	}
	if p.Revenue != nil {
		c.Revenue = *p.Revenue
	}
}
