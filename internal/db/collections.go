package db

// Collection names. Each domain record type maps to one collection,
// named after the record in the singular.
const (
	CollectionUsers        = "user"
	CollectionSessions     = "session"
	CollectionApplications = "application"
	CollectionPayments     = "payment"
)
