package pagenav

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dialectMock is a gorm connection backed by sqlmock for a given SQL dialect.
type dialectMock struct {
	dialect string
	db      *gorm.DB
	mock    sqlmock.Sqlmock
}

type dialectMockFn func(t *testing.T) dialectMock

var _dialectMocks = []dialectMockFn{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func newGORMMySQLMock(t *testing.T) dialectMock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return dialectMock{dialect: "mysql", db: db.Debug(), mock: mock}
}

func newGORMPostgresMock(t *testing.T) dialectMock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return dialectMock{dialect: "postgres", db: db.Debug(), mock: mock}
}
