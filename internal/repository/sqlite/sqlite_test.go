package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *sqlite.Store, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, PasswordHash: "x"}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserCreateAndGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	created := createUser(t, store, "hafidh", "hafidh@mail.com")
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	byID, err := store.Users().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Username != "hafidh" || byID.Email != "hafidh@mail.com" {
		t.Fatalf("unexpected user %+v", byID)
	}

	byEmail, err := store.Users().GetByEmail(ctx, "hafidh@mail.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, byEmail.ID)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	store := newStore(t)

	createUser(t, store, "first", "same@mail.com")
	err := store.Users().Create(context.Background(), &models.User{
		Username: "second", Email: "same@mail.com", PasswordHash: "x",
	})
	if !errors.Is(err, models.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserNotFound(t *testing.T) {
	store := newStore(t)

	if _, err := store.Users().GetByID(context.Background(), 99); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Users().GetByEmail(context.Background(), "no@mail.com"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPhotoListAscendingIDs(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	owner := createUser(t, store, "owner", "owner@mail.com")
	for _, title := range []string{"a", "b", "c"} {
		photo := &models.Photo{Title: title, Caption: title, ImageURL: "http://x/" + title, UserID: owner.ID}
		if err := store.Photos().Create(ctx, photo); err != nil {
			t.Fatalf("create photo %q: %v", title, err)
		}
	}

	list, err := store.Photos().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].ID <= list[i-1].ID {
			t.Fatalf("ids not ascending: %d then %d", list[i-1].ID, list[i].ID)
		}
	}
}

func TestPhotoListEmpty(t *testing.T) {
	store := newStore(t)

	list, err := store.Photos().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// An empty table serializes as [] rather than null.
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
}

func TestPhotoGetWithOwner(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	owner := createUser(t, store, "owner", "owner@mail.com")
	photo := &models.Photo{Title: "t", Caption: "c", ImageURL: "http://x/t", UserID: owner.ID}
	if err := store.Photos().Create(ctx, photo); err != nil {
		t.Fatalf("create photo: %v", err)
	}

	detail, err := store.Photos().GetWithOwner(ctx, photo.ID)
	if err != nil {
		t.Fatalf("GetWithOwner: %v", err)
	}
	if detail.Title != "t" || detail.Caption != "c" {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if detail.User.ID != owner.ID || detail.User.Email != "owner@mail.com" || detail.User.Username != "owner" {
		t.Fatalf("unexpected owner %+v", detail.User)
	}
}

func TestPhotoGetWithOwnerNotFound(t *testing.T) {
	store := newStore(t)

	if _, err := store.Photos().GetWithOwner(context.Background(), 42); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPhotoRequiresExistingOwner(t *testing.T) {
	store := newStore(t)

	err := store.Photos().Create(context.Background(), &models.Photo{
		Title: "t", Caption: "c", ImageURL: "http://x/t", UserID: 123,
	})
	if err == nil {
		t.Fatal("expected foreign key violation for unknown owner")
	}
}
