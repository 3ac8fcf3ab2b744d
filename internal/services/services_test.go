package services_test

import (
	"path/filepath"
	"testing"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository/sqlite"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-for-service-tests"

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newUserService(t *testing.T, store *sqlite.Store) *services.UserService {
	t.Helper()
	tokens := services.NewTokenService(testJWTSecret)
	return services.NewUserService(store.Users(), tokens, bcrypt.MinCost)
}
