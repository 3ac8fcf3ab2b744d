package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/app"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository/sqlite"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-for-handler-tests"

type testEnv struct {
	app    *fiber.App
	tokens *services.TokenService
	users  *services.UserService
	photos *services.PhotoService
	store  *sqlite.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tokens := services.NewTokenService(testJWTSecret)
	users := services.NewUserService(store.Users(), tokens, bcrypt.MinCost)
	photos := services.NewPhotoService(store.Photos())

	return &testEnv{
		app:    app.New(tokens, users, photos),
		tokens: tokens,
		users:  users,
		photos: photos,
		store:  store,
	}
}

// seedUser registers the account the original dataset starts with.
func (e *testEnv) seedUser(t *testing.T) *models.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), models.RegisterRequest{
		Username: "hafidh_ahmad_fauzan",
		Email:    "hafidh_ahmad_fauzan@gmail.com",
		Password: "hafidh2001",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// seedPhoto inserts a photo directly through the repository so the seeded
// caption stays as written instead of being derived.
func (e *testEnv) seedPhoto(t *testing.T, userID int) *models.Photo {
	t.Helper()
	photo := &models.Photo{
		Title:    "Default Photo",
		Caption:  "Default Photo caption",
		ImageURL: "http://image.com/defaultphoto.png",
		UserID:   userID,
	}
	if err := e.store.Photos().Create(context.Background(), photo); err != nil {
		t.Fatalf("seed photo: %v", err)
	}
	return photo
}

// request performs one request against the app. authHeader is the full
// Authorization header value; empty means the header is not set at all.
func (e *testEnv) request(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}
