package catalog

import (
	"errors"

	"github.com/citizenhub/backend/internal/db/models"
)

// ErrGuideNotFound is returned for a key outside the published set.
var ErrGuideNotFound = errors.New("guide not found")

// guides maps document-type keys to their plain-language how-to
// content. Fixed at compile time; lookups never touch the store.
var guides = map[string]models.Guide{
	"aadhaar": {
		Title:    "Get your Aadhaar Number",
		Summary:  "A step-by-step guide to enrol for Aadhaar.",
		Cost:     "Free for first-time enrolment",
		Time:     "Usually a few weeks; up to 180 days",
		Official: "https://myaadhaar.uidai.gov.in/",
		Steps: []string{
			"Find a nearby Aadhaar Enrolment Centre.",
			"Fill the enrolment form.",
			"Show original ID and address proofs. They will be scanned and returned.",
			"Give photo, fingerprints, and iris scans.",
			"Check your details on the screen.",
			"Keep the acknowledgement slip with EID to track.",
			"Download e-Aadhaar when ready.",
		},
	},
	"pan": {
		Title:    "Get your PAN",
		Summary:  "Apply online for a Permanent Account Number (PAN).",
		Cost:     "Instant e-PAN: Free; Regular: ~₹101–₹107",
		Time:     "Instant in minutes (e-PAN) or ~15–20 days",
		Official: "https://www.incometax.gov.in/",
		Steps: []string{
			"Choose Instant e-PAN or Regular PAN.",
			"Fill Form 49A (online).",
			"Pay the fee if required.",
			"Use Aadhaar e-KYC if possible (no paperwork).",
			"If not e-KYC, print, sign, and post the form.",
			"Get e-PAN by email; physical card comes by post.",
		},
	},
	"dl": {
		Title:    "Get a Driving Licence",
		Summary:  "Apply for a Learner's Licence, then take a driving test.",
		Cost:     "Varies by State; ~₹200–₹500 for LL; ₹700–₹1,500 for DL",
		Time:     "LL: same day after test; DL: after road test",
		Official: "https://sarathi.parivahan.gov.in/",
		Steps: []string{
			"Apply online for Learner's Licence.",
			"Upload documents and pay the fee.",
			"Book and pass the online test.",
			"Wait 30 days or more.",
			"Apply for Driving Licence and book road test.",
			"Take the test at the RTO. Bring originals.",
		},
	},
	"voter": {
		Title:    "Register for Voter ID",
		Summary:  "Add your name to the electoral roll (Form 6).",
		Cost:     "Free",
		Time:     "~30 days to 2 months",
		Official: "https://voters.eci.gov.in/",
		Steps: []string{
			"Log in to the Voter Services Portal.",
			"Choose Form 6 and fill your details.",
			"Upload photo, ID, address and age proof.",
			"Submit and keep the reference number.",
			"BLO may visit your home for verification.",
			"Get your EPIC after approval.",
		},
	},
	"passport": {
		Title:    "Get a Passport",
		Summary:  "Create an account and book an appointment at a PSK.",
		Cost:     "Normal: ₹1,500 (36 pages); Tatkaal: ₹3,500",
		Time:     "Normal: 15–30 days; Tatkaal: 7–14 days",
		Official: "https://passportindia.gov.in/",
		Steps: []string{
			"Create account at Passport Seva.",
			"Fill application and pay the fee.",
			"Book appointment at PSK/POPSK.",
			"Visit with originals. Biometrics will be taken.",
			"Police Verification will happen.",
			"Passport will be printed and sent by post.",
		},
	},
}

// GetGuide returns the guide for key, or ErrGuideNotFound.
func GetGuide(key string) (models.Guide, error) {
	guide, ok := guides[key]
	if !ok {
		return models.Guide{}, ErrGuideNotFound
	}
	return guide, nil
}
