package model

import "time"

// Contact is a person record in the contacts collection.
type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	JobTitle  string    `json:"jobTitle"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactPatch carries the client-editable fields of a Contact. Server
// controlled fields (id, createdBy, createdAt) have no counterpart here,
// so a client payload cannot overwrite them.
type ContactPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	JobTitle  *string `json:"jobTitle"`
	Status    *string `json:"status"`
}

func (c *Contact) RecordID() string { return c.ID }

func (c *Contact) Stamp(id, createdBy string, now time.Time) {
	c.ID = id
	c.CreatedBy = createdBy
	c.CreatedAt = now
	c.UpdatedAt = now
}

func (c *Contact) Touch(now time.Time) { c.UpdatedAt = now }

func (c *Contact) Apply(p ContactPatch) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.JobTitle != nil {
		c.JobTitle = *p.JobTitle
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
