package entity

type Room struct {
	Base
	Name        string   `db:"name"`
	Description *string  `db:"description"`
	Capacity    int      `db:"capacity"`
	SizeSqm     *int     `db:"size_sqm"`
	PriceNAD    int64    `db:"price_nad"` // whole NAD per night
	Amenities   []string `db:"amenities"`
	Images      []string `db:"images"`
	IsFeatured  bool     `db:"is_featured"`
	IsAvailable bool     `db:"is_available"`
}
