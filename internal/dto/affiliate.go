package dto

type CreateLinkRequestDTO struct {
	Title        string  `json:"title" validate:"required,min=3,max=120"`
	Description  *string `json:"description,omitempty"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
}

type UpdateLinkRequestDTO struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Description  *string  `json:"description,omitempty"`
	TargetAmount *float64 `json:"target_amount,omitempty" validate:"omitempty,gt=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type LinkResponseDTO struct {
	ID           string  `json:"id"`
	LinkCode     string  `json:"link_code" example:"school-kits-a1b2c3d4"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	TargetAmount float64 `json:"target_amount"`
	IsActive     bool    `json:"is_active"`
	ShareURL     string  `json:"share_url" example:"http://localhost:8080/donate/school-kits-a1b2c3d4"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type PublicLinkResponseDTO struct {
	LinkCode        string  `json:"link_code"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	TargetAmount    float64 `json:"target_amount"`
	CollectedAmount float64 `json:"collected_amount"`
	Progress        float64 `json:"progress"`
}
