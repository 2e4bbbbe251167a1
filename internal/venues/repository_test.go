package venues

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return gdb, mock
}

func TestRepository_GetByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "svg_template", "seat_map", "created_at", "updated_at"}).
		AddRow(id.String(), "Grand Hall", "<svg></svg>",
			[]byte(`{"categories":[{"name":"VIP","rowCount":2,"color":"gold"}]}`),
			time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "venues" WHERE id = $1`)).WillReturnRows(rows)

	venue, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if venue.Name != "Grand Hall" {
		t.Errorf("name = %q", venue.Name)
	}
	if cats := venue.SeatMap.Categories; len(cats) != 1 || cats[0].Name != "VIP" || cats[0].RowCount != 2 {
		t.Errorf("unexpected categories %+v", cats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("error = %v, want ErrRecordNotFound", err)
	}
}

func TestRepository_List(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT "id","name" FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.NewString(), "Arena").
			AddRow(uuid.NewString(), "Grand Hall"))

	venues, total, err := repo.List(context.Background(), VenueFilters{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(venues) != 2 || venues[0].Name != "Arena" {
		t.Errorf("unexpected result total=%d venues=%+v", total, venues)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepository_Delete_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRepository(gdb)

	mock.ExpectExec(`DELETE FROM "venues"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("error = %v, want ErrRecordNotFound", err)
	}
}
