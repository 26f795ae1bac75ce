package domain

import "time"

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     *string   `db:"full_name"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type FundraisingProgress struct {
	UserID          string    `db:"user_id"`
	TargetAmount    float64   `db:"target_amount"`
	CollectedAmount float64   `db:"collected_amount"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Fundraiser is a progress row joined with the owner's profile fields,
// used by the leaderboard, the admin table and the CSV export.
type Fundraiser struct {
	FundraisingProgress
	FullName *string `db:"full_name"`
	Email    *string `db:"email"`
}

type FundraisingStats struct {
	TotalRaised      float64
	TotalFundraisers int
	AverageRaised    float64
	AverageTarget    float64
	CompletionRate   float64
}

type AffiliateLink struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	LinkCode     string    `db:"link_code"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	TargetAmount float64   `db:"target_amount"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// LinkUpdate carries the only fields a link owner may change.
// Nil fields are left untouched.
type LinkUpdate struct {
	Title        *string
	Description  *string
	TargetAmount *float64
	IsActive     *bool
}

type Donation struct {
	ID              string     `db:"id"`
	AffiliateLinkID string     `db:"affiliate_link_id"`
	DonorName       *string    `db:"donor_name"`
	DonorEmail      *string    `db:"donor_email"`
	Amount          float64    `db:"amount"`
	Message         *string    `db:"message"`
	PaymentStatus   string     `db:"payment_status"`
	PaymentMethod   *string    `db:"payment_method"`
	TransactionID   *string    `db:"transaction_id"`
	ReconciledAt    *time.Time `db:"reconciled_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// UnreconciledDonation is a completed donation that has not yet been folded
// into its owner's collected total, joined with the owning user id.
type UnreconciledDonation struct {
	Donation
	OwnerUserID string `db:"owner_user_id"`
}

type DonationStats struct {
	TotalDonations     int
	TotalAmount        float64
	CompletedDonations int
	AverageAmount      float64
}

type Application struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	FullName    string    `db:"full_name"`
	Email       string    `db:"email"`
	PhoneNumber string    `db:"phone_number"`
	ResumeURL   *string   `db:"resume_url"`
	Motivation  string    `db:"motivation"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type OnboardingTask struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	TaskName    string    `db:"task_name"`
	Description *string   `db:"description"`
	IsCompleted bool      `db:"is_completed"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
