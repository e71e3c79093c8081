package postgres

import (
	"context"
	"testing"
	"time"

	"organizer/internal/domain/entity"
	"organizer/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

// Name filters compare case-insensitively but literally, so % and _ in the
// input never act as pattern wildcards.
func TestContactRepository_List_NameFiltersAreLiteral(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE user_id = \$1 AND LOWER\(first_name\) = LOWER\(\$2\) AND LOWER\(last_name\) = LOWER\(\$3\) ORDER BY id`).
		WithArgs(int64(9), "100%", "an_a").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	contacts, err := repo.List(context.Background(), 9, repository.ContactFilter{
		FirstName: "100%",
		LastName:  "an_a",
	})

	require.NoError(t, err)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBirthdayWindows_WithinOneYear(t *testing.T) {
	start := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	windows := birthdayWindows(start, 7)

	require.Len(t, windows, 1)
	assert.Equal(t, birthdayWindow{fromMonth: 3, fromDay: 10, toMonth: 3, toDay: 17}, windows[0])
}

func TestBirthdayWindows_CrossesMonthBoundary(t *testing.T) {
	start := time.Date(2026, time.March, 28, 0, 0, 0, 0, time.UTC)

	windows := birthdayWindows(start, 7)

	require.Len(t, windows, 1)
	assert.Equal(t, birthdayWindow{fromMonth: 3, fromDay: 28, toMonth: 4, toDay: 4}, windows[0])
}

// A window spanning New Year splits into a tail-of-year range and a
// head-of-year range, in that order.
func TestBirthdayWindows_WrapsYearEnd(t *testing.T) {
	start := time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC)

	windows := birthdayWindows(start, 7)

	require.Len(t, windows, 2)
	assert.Equal(t, birthdayWindow{fromMonth: 12, fromDay: 28, toMonth: 12, toDay: 31}, windows[0])
	assert.Equal(t, birthdayWindow{fromMonth: 1, fromDay: 1, toMonth: 1, toDay: 4}, windows[1])
}

func TestBirthdayWindows_LeapDayInWindow(t *testing.T) {
	start := time.Date(2028, time.February, 25, 0, 0, 0, 0, time.UTC)

	windows := birthdayWindows(start, 7)

	require.Len(t, windows, 1)
	// 2028 is a leap year, so the window ends on March 3.
	assert.Equal(t, birthdayWindow{fromMonth: 2, fromDay: 25, toMonth: 3, toDay: 3}, windows[0])
}

func TestPaginate(t *testing.T) {
	contacts := []*entity.Contact{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	page := paginate(contacts, 2, 1)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].ID)
	assert.Equal(t, int64(3), page[1].ID)

	assert.Len(t, paginate(contacts, 10, 0), 4)
	assert.Empty(t, paginate(contacts, 2, 10))
	assert.Len(t, paginate(contacts, 0, 0), 4)
}
