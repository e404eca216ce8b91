package model

import "time"

// BusinessSubmission is a business listing awaiting admin review. Approval
// copies it into the public catalog; rejection only records the decision.
type BusinessSubmission struct {
	ID          string     `json:"id"`
	SubmitterID string     `json:"submitter_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Address     string     `json:"address"`
	Tags        []string   `json:"tags"`
	Website     *string    `json:"website,omitempty"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  *string    `json:"reviewed_by,omitempty"`
}

// ToBusiness converts an approved submission into a catalog listing. The
// location is left unset; the approval flow resolves it afterwards.
func (s *BusinessSubmission) ToBusiness(id string) *Business {
	business := &Business{
		ID:          id,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Address:     s.Address,
		Tags:        s.Tags,
		Status:      BusinessStatusApproved,
	}
	if s.Website != nil {
		business.Website = s.Website
	}
	return business
}
