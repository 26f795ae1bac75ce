package dto

type ProgressResponseDTO struct {
	TargetAmount    float64 `json:"target_amount" example:"10000"`
	CollectedAmount float64 `json:"collected_amount" example:"2500"`
	Progress        float64 `json:"progress" example:"25"`
	CreatedAt       string  `json:"created_at" example:"2025-01-09T16:09:57+03:00"`
	UpdatedAt       string  `json:"updated_at" example:"2025-01-09T16:09:57+03:00"`
}

type UpdateProgressRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"500"`
}

type LeaderboardEntryDTO struct {
	Rank            int     `json:"rank" example:"1"`
	FullName        string  `json:"full_name" example:"A B"`
	TargetAmount    float64 `json:"target_amount" example:"10000"`
	CollectedAmount float64 `json:"collected_amount" example:"7500"`
	Progress        float64 `json:"progress" example:"75"`
}

type FundraisingStatsDTO struct {
	TotalRaised      float64 `json:"total_raised" example:"125000"`
	TotalFundraisers int     `json:"total_fundraisers" example:"42"`
	AverageRaised    float64 `json:"average_raised" example:"2976.19"`
	AverageTarget    float64 `json:"average_target" example:"10000"`
	CompletionRate   float64 `json:"completion_rate" example:"29.76"`
}

type FundraiserDTO struct {
	UserID          string  `json:"user_id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	TargetAmount    float64 `json:"target_amount"`
	CollectedAmount float64 `json:"collected_amount"`
	Progress        float64 `json:"progress"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type AdminFundraisingResponseDTO struct {
	Fundraisers []FundraiserDTO     `json:"fundraisers"`
	Stats       FundraisingStatsDTO `json:"stats"`
}
