package partners

// Partner categories. Filtering matches these exactly, case-sensitive.
const (
	CategoryAll           = "all"
	CategoryAccommodation = "accommodation"
	CategoryTransport     = "transport"
	CategoryLifestyle     = "lifestyle"
)

// Entry is one vetted partner listing. The catalog is static: entries are
// never mutated at runtime.
type Entry struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Tier         string `json:"tier"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	DiscountText string `json:"discount_text"`
	InsiderTip   string `json:"insider_tip"`
	Contact      string `json:"contact"`
}

// Catalog is an in-memory partner directory preserving load order.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog over the given entries.
func NewCatalog(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Filter returns partners in the given category, in catalog order. "all"
// returns every entry. The result is always a fresh slice; callers cannot
// reach the backing catalog through it.
func (c *Catalog) Filter(category string) []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if category == CategoryAll || e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Default returns the curated Da Nang partner directory.
func Default() *Catalog {
	return NewCatalog([]Entry{
		{
			ID:           1,
			Name:         "Han River Boutique Hotel",
			Category:     CategoryAccommodation,
			Tier:         "Gold Partner",
			Address:      "15 Bach Dang, Hai Chau, Da Nang",
			Description:  "Riverside rooms with monthly rates for long stays.",
			DiscountText: "5% off nightly and monthly rates",
			InsiderTip:   "Ask for a river-facing room above the 6th floor.",
			Contact:      "stay@hanriverboutique.vn",
		},
		{
			ID:           2,
			Name:         "An Thuong Apartments",
			Category:     CategoryAccommodation,
			Tier:         "Verified Partner",
			Address:      "An Thuong 4, My An, Ngu Hanh Son",
			Description:  "Serviced studios two blocks from My Khe beach.",
			DiscountText: "5% off first month, free laundry twice a week",
			InsiderTip:   "Mention the pass at the desk, not via the booking sites.",
			Contact:      "+84 905 111 222",
		},
		{
			ID:           3,
			Name:         "Da Nang Motorbike Rental",
			Category:     CategoryTransport,
			Tier:         "Gold Partner",
			Address:      "27 Nguyen Van Thoai, Son Tra",
			Description:  "Well-maintained semi-automatics with honest pricing and no passport deposit.",
			DiscountText: "5% off monthly rentals, free helmet upgrade",
			InsiderTip:   "The Honda Air Blades are serviced most recently; ask for one.",
			Contact:      "rent@dnmotorbike.vn",
		},
		{
			ID:           4,
			Name:         "Dragon Fitness Club",
			Category:     CategoryLifestyle,
			Tier:         "Verified Partner",
			Address:      "88 Vo Nguyen Giap, My Khe",
			Description:  "Full gym with sea-view cardio deck and day lockers.",
			DiscountText: "Member rate on monthly passes, free first session",
			InsiderTip:   "Mornings before 9am are quiet even in high season.",
			Contact:      "hello@dragonfitness.vn",
		},
		{
			ID:           5,
			Name:         "Cong Ca Phe My An",
			Category:     CategoryLifestyle,
			Tier:         "Community Favorite",
			Address:      "96 Tran Bach Dang, My An",
			Description:  "The community's default co-working cafe; strong wifi, stronger ca phe sua da.",
			DiscountText: "One free Vietnamese coffee per day",
			InsiderTip:   "The upstairs balcony has the power outlets.",
			Contact:      "@congcaphe.myan",
		},
	})
}
