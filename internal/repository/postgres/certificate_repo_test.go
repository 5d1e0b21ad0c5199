package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"uniboard/internal/domain"
)

var certificateColumns = []string{
	"id", "fullname", "coursename", "certificatenumber", "issuedate",
	"organization", "organization_slug", "template_id",
	"description", "instructor", "language",
	"instructor_bio", "organization_description",
	"duration", "skills", "grade",
	"total_hours", "course_logo",
	"certificate_title", "provider_text",
	"completion_text", "instructor_label",
	"date_label", "certificate_number_label",
	"qr_scan_text", "skills_label",
	"total_hours_label", "grade_label",
}

func TestCertificateRepository_GetByNumber(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
		check   func(t *testing.T, c *domain.Certificate)
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(certificateColumns).AddRow(
					int64(7), "Ayşe Yılmaz", "ISO 9001", "ABC-2024-001", "2024-03-15",
					"Uniboard Akademi", "uniboard-akademi", int64(3),
					"", "Dr. Kemal Aydın", "tr",
					"", "", "12 saat", "{kalite,denetim}", "95",
					"12", "", "", "", "", "", "", "", "", "", "", "",
				)
				mock.ExpectQuery(`FROM certificates`).
					WithArgs("uniboard-akademi", "ABC-2024-001").
					WillReturnRows(rows)
			},
			check: func(t *testing.T, c *domain.Certificate) {
				require.Equal(t, int64(7), c.ID)
				require.Equal(t, "Ayşe Yılmaz", c.FullName)
				require.Equal(t, "ISO 9001", c.CourseName)
				require.Equal(t, int64(3), c.TemplateID)
				require.Equal(t, []string{"kalite", "denetim"}, c.Skills)
				require.Equal(t, "tr", c.Language)
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM certificates`).
					WithArgs("uniboard-akademi", "ABC-2024-001").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrCertificateNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM certificates`).
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
			repo := NewCertificateRepository(db)
			c, err := repo.GetByNumber(ctx, "uniboard-akademi", "ABC-2024-001")
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				tt.check(t, c)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
