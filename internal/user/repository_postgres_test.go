package user

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "phone_number", "address", "age", "e_id", "e_name"})
}

func TestPostgresListBindsFilterSortAndPaging(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := userRows().
		AddRow(1, "Jan Kowalski", "123", "ul. Testowa 1", 30, 2, "Higher").
		AddRow(3, "Janina", "456", "ul. Polna 2", 41, nil, nil)
	mock.ExpectQuery("FROM users").WithArgs("%Jan%", 10, 0).WillReturnRows(rows)

	name := "Jan"
	users, err := repo.List(ListQuery{
		Filter: Filter{Name: &name},
		Sort:   Sort{By: "name"},
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Education == nil || users[0].Education.Name != "Higher" {
		t.Fatalf("education not joined: %+v", users[0])
	}
	if users[1].Education != nil {
		t.Fatalf("expected nil education: %+v", users[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListUnboundedForExport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WillReturnRows(userRows())

	if _, err := repo.List(ListQuery{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").WithArgs(30).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	age := 30
	total, err := repo.Count(Filter{Age: &age})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("total = %d, want 25", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WithArgs(9).WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresCreateReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Jan", "123", "ul. Testowa 1", 30, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.Create(User{Name: "Jan", PhoneNumber: "123", Address: "ul. Testowa 1", Age: 30})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("id = %d, want 11", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(5, User{Name: "X", PhoneNumber: "1", Address: "a", Age: 30}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM users").WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
