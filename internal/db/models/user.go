package models

// Language is a citizen's preferred interface language.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

// User is a citizen account, identified by email. Accounts are created
// on first login and never updated by the login path afterwards.
type User struct {
	Name              string   `bson:"name" json:"name"`
	Email             string   `bson:"email" json:"email"`
	PreferredLanguage Language `bson:"preferred_language" json:"preferred_language"`
	IsActive          bool     `bson:"is_active" json:"is_active"`
}

// ValidLanguage reports whether l is a supported language code.
func ValidLanguage(l Language) bool {
	switch l {
	case LangEnglish, LangHindi:
		return true
	}
	return false
}
