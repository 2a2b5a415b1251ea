package entity

type GalleryItem struct {
	BaseSimple
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Category    *string `db:"category"`
	ImageURL    string  `db:"image_url"`
	SortOrder   int     `db:"sort_order"`
}
