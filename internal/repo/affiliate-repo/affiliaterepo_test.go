package affiliaterepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var linkCols = []string{"id", "user_id", "link_code", "title", "description", "target_amount", "is_active", "created_at", "updated_at"}

func TestRepository_FindActiveByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name:   "Active link found",
			userID: "user-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(linkCols).
					AddRow("link-1", "user-1", "school-kits-x7k2", "School Kits", nil, 5000.0, true, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, link_code, title, description, target_amount, is_active, created_at, updated_at
        FROM affiliate_links
        WHERE user_id = $1 AND is_active = TRUE
    `)).
					WithArgs("user-1").
					WillReturnRows(rows)
			},
		},
		{
			name:   "No active link returns nil",
			userID: "user-2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, link_code, title, description, target_amount, is_active, created_at, updated_at
        FROM affiliate_links
        WHERE user_id = $1 AND is_active = TRUE
    `)).
					WithArgs("user-2").
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name:   "Database error",
			userID: "user-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, link_code, title, description, target_amount, is_active, created_at, updated_at
        FROM affiliate_links
        WHERE user_id = $1 AND is_active = TRUE
    `)).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			link, err := repo.FindActiveByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, link)
			} else {
				assert.NotNil(t, link)
				assert.Equal(t, "school-kits-x7k2", link.LinkCode)
			}
		})
	}
}

func TestRepository_FindActiveByCode(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Code resolves to active link",
			code: "school-kits-x7k2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, link_code, title, description, target_amount, is_active, created_at, updated_at
        FROM affiliate_links
        WHERE link_code = $1 AND is_active = TRUE
    `)).
					WithArgs("school-kits-x7k2").
					WillReturnRows(pgxmock.NewRows(linkCols).
						AddRow("link-1", "user-1", "school-kits-x7k2", "School Kits", nil, 5000.0, true, now, now))
			},
		},
		{
			name: "Inactive or unknown code returns nil",
			code: "gone",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, link_code, title, description, target_amount, is_active, created_at, updated_at
        FROM affiliate_links
        WHERE link_code = $1 AND is_active = TRUE
    `)).
					WithArgs("gone").
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			link, err := repo.FindActiveByCode(context.Background(), tt.code)
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, link)
			} else {
				assert.NotNil(t, link)
			}
		})
	}
}

func TestRepository_CodeTaken(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		taken     bool
	}{
		{
			name: "Code already in use",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM affiliate_links WHERE link_code = $1)`)).
					WithArgs("school-kits-x7k2").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			taken: true,
		},
		{
			name: "Code free",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM affiliate_links WHERE link_code = $1)`)).
					WithArgs("school-kits-x7k2").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM affiliate_links WHERE link_code = $1)`)).
					WithArgs("school-kits-x7k2").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			taken, err := repo.CodeTaken(context.Background(), "school-kits-x7k2")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.taken, taken)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	link := &domain.AffiliateLink{
		ID:           "link-1",
		UserID:       "user-1",
		LinkCode:     "school-kits-x7k2",
		Title:        "School Kits",
		TargetAmount: 5000.0,
		IsActive:     true,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves link",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO affiliate_links (id, user_id, link_code, title, description, target_amount, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `)).
						WithArgs("link-1", "user-1", "school-kits-x7k2", "School Kits", (*string)(nil), 5000.0, true).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO affiliate_links (id, user_id, link_code, title, description, target_amount, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `)).
						WithArgs("link-1", "user-1", "school-kits-x7k2", "School Kits", (*string)(nil), 5000.0, true).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), link)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	title := "Winter Drive"
	active := false

	tests := []struct {
		name      string
		upd       domain.LinkUpdate
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Partial update keeps untouched fields",
			upd:  domain.LinkUpdate{Title: &title, IsActive: &active},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery("UPDATE affiliate_links").
						WithArgs(&title, (*string)(nil), (*float64)(nil), &active, "link-1").
						WillReturnRows(pgxmock.NewRows(linkCols).
							AddRow("link-1", "user-1", "school-kits-x7k2", "Winter Drive", nil, 5000.0, false, now, now))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			upd:  domain.LinkUpdate{Title: &title},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery("UPDATE affiliate_links").
						WithArgs(&title, (*string)(nil), (*float64)(nil), (*bool)(nil), "link-1").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.Update(context.Background(), "link-1", tt.upd)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Winter Drive", updated.Title)
				assert.False(t, updated.IsActive)
			}
		})
	}
}
