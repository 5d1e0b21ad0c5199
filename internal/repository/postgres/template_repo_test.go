package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"uniboard/internal/domain"
)

var templateTestColumns = []string{
	"id", "name", "description", "background_image",
	"organization_slug", "is_default", "design_settings",
	"created_at", "updated_at",
}

func TestTemplateRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
		check   func(t *testing.T, tpl *domain.Template)
	}{
		{
			name: "success with object settings",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(templateTestColumns).AddRow(
					int64(3), "classic", "", "https://cdn.example.com/bg.png",
					"uniboard-akademi", true, []byte(`{"fonts":{"body":"sans_serif"}}`),
					now, now,
				)
				mock.ExpectQuery(`FROM certificate_templates`).
					WithArgs("uniboard-akademi", int64(3)).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, tpl *domain.Template) {
				require.Equal(t, int64(3), tpl.ID)
				require.True(t, tpl.IsDefault)
				require.JSONEq(t, `{"fonts":{"body":"sans_serif"}}`, string(tpl.DesignSettings))
			},
		},
		{
			name: "success with string-encoded settings",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(templateTestColumns).AddRow(
					int64(3), "classic", "", "https://cdn.example.com/bg.png",
					"uniboard-akademi", false, []byte(`"{\"fonts\":{}}"`),
					now, now,
				)
				mock.ExpectQuery(`FROM certificate_templates`).
					WithArgs("uniboard-akademi", int64(3)).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, tpl *domain.Template) {
				// The repository hands the payload through untouched; the
				// resolver owns dual-encoding normalization.
				settings, err := domain.ParseDesignSettings(tpl.DesignSettings)
				require.NoError(t, err)
				require.NotNil(t, settings)
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM certificate_templates`).
					WithArgs("uniboard-akademi", int64(3)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrTemplateNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM certificate_templates`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTemplateRepository(db)
			tpl, err := repo.GetByID(ctx, "uniboard-akademi", 3)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				tt.check(t, tpl)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTemplateRepository_GetDefault(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(templateTestColumns).AddRow(
		int64(9), "default design", "", "https://cdn.example.com/default.png",
		"uniboard-akademi", true, []byte(`{}`),
		now, now,
	)
	mock.ExpectQuery(`is_default = true`).
		WithArgs("uniboard-akademi").
		WillReturnRows(rows)

	repo := NewTemplateRepository(db)
	tpl, err := repo.GetDefault(ctx, "uniboard-akademi")
	require.NoError(t, err)
	require.Equal(t, int64(9), tpl.ID)
	require.True(t, tpl.IsDefault)
	require.NoError(t, mock.ExpectationsWereMet())
}
