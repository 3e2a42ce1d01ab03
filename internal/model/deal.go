package model

import "time"

// Deal pipeline stages, in board order. Won and Lost are terminal by
// convention only; any stage is reachable from any stage.
const (
	StageProspecting   = "Prospecting"
	StageQualification = "Qualification"
	StageProposal      = "Proposal"
	StageNegotiation   = "Negotiation"
	StageWon           = "Won"
	StageLost          = "Lost"
)

// Stages returns the fixed stage vocabulary in board order.
func Stages() []string {
	return []string{
		StageProspecting,
		StageQualification,
		StageProposal,
		StageNegotiation,
		StageWon,
		StageLost,
	}
}

// Deal is a sales opportunity in the deals collection. CompanyID and
// ContactID are soft references; dangling ids are tolerated and simply
// render as empty on the client.
type Deal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CompanyID string    `json:"companyId"`
	ContactID string    `json:"contactId"`
	Value     Amount    `json:"value"`
	Stage     string    `json:"stage"`
	CloseDate string    `json:"closeDate"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DealPatch carries the client-editable fields of a Deal.
type DealPatch struct {
	Name      *string `json:"name"`
	CompanyID *string `json:"companyId"`
	ContactID *string `json:"contactId"`
	Value     *Amount `json:"value"`
	Stage     *string `json:"stage"`
	CloseDate *string `json:"closeDate"`
}

func (d *Deal) RecordID() string { return d.ID }

func (d *Deal) Stamp(id, createdBy string, now time.Time) {
	d.ID = id
	d.CreatedBy = createdBy
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Stage == "" {
		d.Stage = StageProspecting
	}
}

func (d *Deal) Touch(now time.Time) { d.UpdatedAt = now }

func (d *Deal) Apply(p DealPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.CompanyID != nil {
		d.CompanyID = *p.CompanyID
	}
	if p.ContactID != nil {
		d.ContactID = *p.ContactID
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.Stage != nil {
		d.Stage = *p.Stage
	}
	if p.CloseDate != nil {
		d.CloseDate = *p.CloseDate
	}
}
