package dto

type ApplicationRequestDTO struct {
	FullName    string  `json:"full_name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber string  `json:"phone_number" validate:"required,min=7,max=20"`
	ResumeURL   *string `json:"resume_url,omitempty" validate:"omitempty,url"`
	Motivation  string  `json:"motivation" validate:"required,min=20"`
}

type ApplicationResponseDTO struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	ResumeURL   *string `json:"resume_url,omitempty"`
	Motivation  string  `json:"motivation"`
	Status      string  `json:"status" example:"pending"`
	CreatedAt   string  `json:"created_at"`
}

type TaskResponseDTO struct {
	ID          string  `json:"id"`
	TaskName    string  `json:"task_name"`
	Description *string `json:"description,omitempty"`
	IsCompleted bool    `json:"is_completed"`
	SortOrder   int     `json:"sort_order"`
}

type UpdateTaskRequestDTO struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}
