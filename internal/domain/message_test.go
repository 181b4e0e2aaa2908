package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"known general", "genel", SubjectGeneral},
		{"known dealership", "bayilik", SubjectDealership},
		{"known product info", "urun-bilgisi", SubjectProductInfo},
		{"known complaint", "sikayet", SubjectComplaint},
		{"empty defaults to general", "", SubjectGeneral},
		{"unknown defaults to general", "bilinmeyen", SubjectGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSubject(tt.code))
		})
	}
}

func TestSubjectLabel(t *testing.T) {
	assert.Equal(t, "Genel Bilgi", SubjectLabel(SubjectGeneral))
	assert.Equal(t, "Bayilik Başvurusu", SubjectLabel(SubjectDealership))
	assert.Equal(t, "Ürün Bilgisi Talebi", SubjectLabel(SubjectProductInfo))
	assert.Equal(t, "Şikayet / Öneri", SubjectLabel(SubjectComplaint))
	assert.Equal(t, "Genel Bilgi", SubjectLabel("bilinmeyen"))
}
