package request

type CreateRoomRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Capacity    int      `json:"capacity" validate:"required,min=1,max=20"`
	SizeSqm     *int     `json:"size_sqm,omitempty" validate:"omitempty,min=1"`
	PriceNAD    int64    `json:"price_nad" validate:"required,min=1"`
	Amenities   []string `json:"amenities,omitempty"`
	IsFeatured  bool     `json:"is_featured"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// UpdateRoomRequest is a full replace of the editable fields; images are
// managed through the create upload and left untouched here.
type UpdateRoomRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Capacity    int      `json:"capacity" validate:"required,min=1,max=20"`
	SizeSqm     *int     `json:"size_sqm,omitempty" validate:"omitempty,min=1"`
	PriceNAD    int64    `json:"price_nad" validate:"required,min=1"`
	Amenities   []string `json:"amenities,omitempty"`
	IsFeatured  bool     `json:"is_featured"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}
