package domain

import "time"

// Contact form subject codes.
const (
	SubjectGeneral     = "genel"
	SubjectDealership  = "bayilik"
	SubjectProductInfo = "urun-bilgisi"
	SubjectComplaint   = "sikayet"
)

// subjectLabels maps subject codes to the display text shown in the admin inbox.
var subjectLabels = map[string]string{
	SubjectGeneral:     "Genel Bilgi",
	SubjectDealership:  "Bayilik Başvurusu",
	SubjectProductInfo: "Ürün Bilgisi Talebi",
	SubjectComplaint:   "Şikayet / Öneri",
}

// Message represents an inbound contact form submission.
type Message struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Subject      string    `json:"subject"`
	SubjectLabel string    `json:"subjectLabel"`
	Message      string    `json:"message"`
	Date         time.Time `json:"date"`
	Read         bool      `json:"read"`
}

// NormalizeSubject returns the given subject code if it is known, falling
// back to SubjectGeneral for empty or unknown codes.
func NormalizeSubject(code string) string {
	if _, ok := subjectLabels[code]; ok {
		return code
	}
	return SubjectGeneral
}

// SubjectLabel returns the display label for a subject code. Unknown codes
// map to the general label.
func SubjectLabel(code string) string {
	return subjectLabels[NormalizeSubject(code)]
}
