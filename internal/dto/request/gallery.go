package request

type CreateGalleryRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	SortOrder   int     `json:"sort_order" validate:"min=0"`
}
