package domain

// Product is a catalog listing. Everything except Liked is immutable
// once the row exists.
type Product struct {
	ID            string  `db:"id"`
	Title         string  `db:"title"`
	Brand         string  `db:"brand"`
	Size          string  `db:"size"`
	Price         float64 `db:"price"`
	OriginalPrice float64 `db:"original_price"`
	Image         string  `db:"image"`
	Description   string  `db:"description"`
	Category      string  `db:"category"`
	Condition     string  `db:"condition"`
	Liked         bool    `db:"liked"`
	Pos           int     `db:"pos"`
	CreatedAt     string  `db:"created_at"`
}

// ClosetItem is a static profile entry ("My Closet"). These are not
// catalog products; the closet tab is seeded display data.
type ClosetItem struct {
	ID    string
	Title string
	Brand string
	Price float64
	Image string
}
