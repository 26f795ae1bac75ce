package dto

type DonateRequestDTO struct {
	DonorName  *string `json:"donor_name,omitempty" validate:"omitempty,max=100"`
	DonorEmail *string `json:"donor_email,omitempty" validate:"omitempty,email"`
	Amount     float64 `json:"amount" validate:"required,gt=0" example:"100"`
	Message    *string `json:"message,omitempty" validate:"omitempty,max=500"`
}

type DonationResponseDTO struct {
	ID            string  `json:"id"`
	DonorName     *string `json:"donor_name,omitempty"`
	DonorEmail    *string `json:"donor_email,omitempty"`
	Amount        float64 `json:"amount"`
	Message       *string `json:"message,omitempty"`
	PaymentStatus string  `json:"payment_status" example:"pending"`
	CreatedAt     string  `json:"created_at"`
}

type DonationStatsResponseDTO struct {
	TotalDonations     int     `json:"total_donations" example:"12"`
	TotalAmount        float64 `json:"total_amount" example:"3400"`
	CompletedDonations int     `json:"completed_donations" example:"9"`
	AverageAmount      float64 `json:"average_amount" example:"377.78"`
}

type UpdateDonationStatusRequestDTO struct {
	Status        string  `json:"status" validate:"required,oneof=completed failed"`
	TransactionID *string `json:"transaction_id,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
}
