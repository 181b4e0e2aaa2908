package domain

// Slider represents one slide of the homepage hero slider.
//
// Order is assigned as "current collection length + 1" at creation and is
// never renumbered on delete, so gaps and duplicates can occur. The admin
// screen sorts by Order and tolerates both; keep the quirk.
type Slider struct {
	ID     string `json:"id"`
	Image  string `json:"image"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}
