package jsondb

import "github.com/kuvvetliisik/pharma-showcase/internal/domain"

// seedDocument builds the initial catalog written on first access. Messages
// and sliders always start empty; they are only created through the site.
func seedDocument() *Document {
	return &Document{
		Brands: []domain.Brand{
			{
				ID:          "b1",
				Name:        "Cire Aseptine",
				Description: "Yüz ve vücut bakımında uzmanlaşmış dermokozmetik markası.",
				Logo:        "/images/brands/cire-aseptine.png",
			},
			{
				ID:          "b2",
				Name:        "Dermia Lab",
				Description: "Eczane kanalına özel cilt bakım serisi.",
				Logo:        "/images/brands/dermia-lab.png",
			},
			{
				ID:          "b3",
				Name:        "Bebecare",
				Description: "Bebek cildi için paraben içermeyen bakım ürünleri.",
				Logo:        "/images/brands/bebecare.png",
			},
		},
		Products: []domain.Product{
			{
				ID:          "p1",
				Name:        "Cire Aseptine Klasik Bakım Kremi 250ml",
				BrandID:     "b1",
				Category:    "Cilt Bakımı",
				Description: "Gliserin içerikli, el ve vücut için klasik bakım kremi.",
				Image:       "/images/products/cire-aseptine-klasik.png",
			},
			{
				ID:          "p2",
				Name:        "Cire Aseptine Güneş Kremi SPF50",
				BrandID:     "b1",
				Category:    "Güneş Bakımı",
				Description: "Yüksek korumalı, suya dayanıklı güneş kremi.",
				Image:       "/images/products/cire-aseptine-spf50.png",
			},
			{
				ID:          "p3",
				Name:        "Dermia Lab Onarıcı Gece Serumu",
				BrandID:     "b2",
				Category:    "Cilt Bakımı",
				Description: "Hyalüronik asit içeren yoğun onarıcı gece serumu.",
				Image:       "/images/products/dermia-gece-serumu.png",
			},
			{
				ID:          "p4",
				Name:        "Bebecare Pişik Önleyici Krem",
				BrandID:     "b3",
				Category:    "Bebek Bakımı",
				Description: "Çinko oksitli, her alt değişiminde kullanılabilen pişik kremi.",
				Image:       "/images/products/bebecare-pisik.png",
			},
			{
				ID:          "p5",
				Name:        "Bebecare Saç ve Vücut Şampuanı",
				BrandID:     "b3",
				Category:    "Bebek Bakımı",
				Description: "Göz yakmayan formüllü, günlük kullanıma uygun şampuan.",
				Image:       "/images/products/bebecare-sampuan.png",
			},
		},
		Messages: []domain.Message{},
		Sliders:  []domain.Slider{},
	}
}
