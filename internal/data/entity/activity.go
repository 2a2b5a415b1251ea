package entity

type Activity struct {
	Base
	Name            string   `db:"name"`
	Description     *string  `db:"description"`
	Capacity        int      `db:"capacity"`
	PriceNAD        int64    `db:"price_nad"` // whole NAD per guest
	Duration        *string  `db:"duration"`
	Category        *string  `db:"category"`
	DifficultyLevel *string  `db:"difficulty_level"`
	Includes        []string `db:"includes"`
	Images          []string `db:"images"`
	IsFeatured      bool     `db:"is_featured"`
	IsAvailable     bool     `db:"is_available"`
}
