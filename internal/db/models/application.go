package models

// DocType identifies which government document an application is for.
type DocType string

const (
	DocAadhaar  DocType = "aadhaar"
	DocPAN      DocType = "pan"
	DocDL       DocType = "dl"
	DocVoter    DocType = "voter"
	DocPassport DocType = "passport"
)

// ApplicationStatus is the lifecycle state of an application. This
// service only ever writes StatusDraft; the remaining states exist for
// records mutated by external review tooling.
type ApplicationStatus string

const (
	StatusDraft     ApplicationStatus = "draft"
	StatusSubmitted ApplicationStatus = "submitted"
	StatusInReview  ApplicationStatus = "in_review"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
)

// Application is a citizen's filing for a government document.
// Metadata is caller-defined and stored opaquely.
type Application struct {
	UserEmail   string                 `bson:"user_email" json:"user_email"`
	DocType     DocType                `bson:"doc_type" json:"doc_type"`
	Status      ApplicationStatus      `bson:"status" json:"status"`
	ReferenceID string                 `bson:"reference_id,omitempty" json:"reference_id,omitempty"`
	Metadata    map[string]interface{} `bson:"metadata" json:"metadata"`
}

// ValidDocType reports whether t names a supported document type.
func ValidDocType(t DocType) bool {
	switch t {
	case DocAadhaar, DocPAN, DocDL, DocVoter, DocPassport:
		return true
	}
	return false
}
