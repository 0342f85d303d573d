package models

// LeadStatus defines the lifecycle states of a sales lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusDropped   LeadStatus = "dropped"
	LeadStatusConverted LeadStatus = "converted"
)

// DemandNoteStatus defines the states of a post-sales demand note
type DemandNoteStatus string

const (
	DemandNoteStatusDraft     DemandNoteStatus = "draft"
	DemandNoteStatusIssued    DemandNoteStatus = "issued"
	DemandNoteStatusPaid      DemandNoteStatus = "paid"
	DemandNoteStatusCancelled DemandNoteStatus = "cancelled"
)

// PaymentMode defines how a payment receipt was settled
type PaymentMode string

const (
	PaymentModeCash     PaymentMode = "cash"
	PaymentModeCheque   PaymentMode = "cheque"
	PaymentModeTransfer PaymentMode = "transfer"
	PaymentModeUPI      PaymentMode = "upi"
)

// NoticeCategory defines the categories of community notices
type NoticeCategory string

const (
	NoticeCategoryGeneral     NoticeCategory = "general"
	NoticeCategoryMaintenance NoticeCategory = "maintenance"
	NoticeCategoryBilling     NoticeCategory = "billing"
	NoticeCategoryEmergency   NoticeCategory = "emergency"
)

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusDropped, LeadStatusConverted:
		return true
	}
	return false
}

// IsValid checks if the DemandNoteStatus is valid
func (s DemandNoteStatus) IsValid() bool {
	switch s {
	case DemandNoteStatusDraft, DemandNoteStatusIssued, DemandNoteStatusPaid, DemandNoteStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the PaymentMode is valid
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCheque, PaymentModeTransfer, PaymentModeUPI:
		return true
	}
	return false
}

// IsValid checks if the NoticeCategory is valid
func (c NoticeCategory) IsValid() bool {
	switch c {
	case NoticeCategoryGeneral, NoticeCategoryMaintenance, NoticeCategoryBilling, NoticeCategoryEmergency:
		return true
	}
	return false
}
