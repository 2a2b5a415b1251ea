package request

type CreateActivityRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     *string  `json:"description,omitempty"`
	Capacity        int      `json:"capacity" validate:"required,min=1,max=50"`
	PriceNAD        int64    `json:"price_nad" validate:"required,min=1"`
	Duration        *string  `json:"duration,omitempty"`
	Category        *string  `json:"category,omitempty"`
	DifficultyLevel *string  `json:"difficulty_level,omitempty" validate:"omitempty,oneof=easy moderate challenging"`
	Includes        []string `json:"includes,omitempty"`
	IsFeatured      bool     `json:"is_featured"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
}

// UpdateActivityRequest is a full replace of the editable fields; images are
// managed through the create upload and left untouched here.
type UpdateActivityRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     *string  `json:"description,omitempty"`
	Capacity        int      `json:"capacity" validate:"required,min=1,max=50"`
	PriceNAD        int64    `json:"price_nad" validate:"required,min=1"`
	Duration        *string  `json:"duration,omitempty"`
	Category        *string  `json:"category,omitempty"`
	DifficultyLevel *string  `json:"difficulty_level,omitempty" validate:"omitempty,oneof=easy moderate challenging"`
	Includes        []string `json:"includes,omitempty"`
	IsFeatured      bool     `json:"is_featured"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
}
