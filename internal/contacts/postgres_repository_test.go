package contacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestPostgresCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(pgxmock.AnyArg(), "Jane Doe", "jane@example.com", "Hello", "I would like to discuss a project opportunity.").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	sub, err := repo.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub.ID == "" {
		t.Error("expected generated id")
	}
	if !sub.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, sub.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateRejectsInvalid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	req := validRequest()
	req.Name = "J"

	if _, err := repo.Create(context.Background(), req); err == nil {
		t.Fatal("expected validation error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should run for invalid input: %v", err)
	}
}

func TestPostgresCreateInsertError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(pgxmock.AnyArg(), "Jane Doe", "jane@example.com", "Hello", "I would like to discuss a project opportunity.").
		WillReturnError(errors.New("connection lost"))

	if _, err := repo.Create(context.Background(), validRequest()); err == nil {
		t.Fatal("expected insert error")
	}
}

func TestPostgresListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "name", "email", "subject", "message", "created_at"}).
		AddRow(uuid.NewString(), "Jane Doe", "jane@example.com", "Hello", "A first message body.", now).
		AddRow(uuid.NewString(), "John Smith", "john@example.com", "Hi there", "A second message body.", now.Add(time.Minute))

	mock.ExpectQuery("SELECT id, name, email, subject, message, created_at").
		WillReturnRows(rows)

	subs, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(subs))
	}
	if subs[0].Name != "Jane Doe" || subs[1].Name != "John Smith" {
		t.Errorf("unexpected ordering: %s, %s", subs[0].Name, subs[1].Name)
	}
}
