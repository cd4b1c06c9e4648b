package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/pkg/jwt"
)

type fakeAdminRepo struct {
	admins map[string]*model.Admin
}

func newFakeAdminRepo(admins ...*model.Admin) *fakeAdminRepo {
	r := &fakeAdminRepo{admins: make(map[string]*model.Admin)}
	for _, a := range admins {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.admins[a.Email] = a
	}
	return r
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	return a, nil
}

func (r *fakeAdminRepo) Upsert(_ context.Context, a *model.Admin) (*model.Admin, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.admins[a.Email] = a
	return a, nil
}

func seededService(t *testing.T, password string) (AuthServiceInterface, *jwt.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeAdminRepo(&model.Admin{
		Email:    "admin@gallery.test",
		Name:     "Gallery Admin",
		Password: string(hash),
	})
	manager := jwt.NewManager("test-secret", 24*time.Hour)
	return NewAuthService(repo, manager), manager
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, manager := seededService(t, "correct horse")

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@gallery.test",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Admin)
	assert.Equal(t, "admin@gallery.test", result.Admin.Email)

	claims, err := manager.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@gallery.test", claims.Email)
	assert.Equal(t, "Gallery Admin", claims.Name)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := seededService(t, "correct horse")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@gallery.test",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, model.ErrAdminNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := seededService(t, "correct horse")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@gallery.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, model.ErrInvalidPassword)
}

func TestLoginValidatesPayload(t *testing.T) {
	svc, _ := seededService(t, "correct horse")

	cases := []model.LoginRequest{
		{},
		{Email: "admin@gallery.test"},
		{Password: "correct horse"},
		{Email: "not-an-email", Password: "correct horse"},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), &req)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	}
}

func TestLoginResultOmitsPasswordHash(t *testing.T) {
	svc, _ := seededService(t, "correct horse")

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@gallery.test",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// AdminInfo has no password field; make sure nobody widens it.
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotEmpty(t, result.Admin.ID)
}

type failingStorage struct{}

func (failingStorage) TotalUsage(context.Context) (int64, error) {
	return 0, errors.New("connection refused")
}

type fixedStorage struct{ bytes int64 }

func (s fixedStorage) TotalUsage(context.Context) (int64, error) {
	return s.bytes, nil
}

type fixedArtistStats struct{ count, artworks int64 }

func (s fixedArtistStats) Count(context.Context) (int64, error)         { return s.count, nil }
func (s fixedArtistStats) TotalArtworks(context.Context) (int64, error) { return s.artworks, nil }

type fixedCollectionStats struct{ count int64 }

func (s fixedCollectionStats) Count(context.Context) (int64, error) { return s.count, nil }

func TestDashboardStats(t *testing.T) {
	quota := int64(10 << 30) // 10 GB
	svc := NewDashboardService(
		fixedArtistStats{count: 12, artworks: 87},
		fixedCollectionStats{count: 34},
		fixedStorage{bytes: 5 << 30},
		quota,
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.ArtistCount)
	assert.Equal(t, int64(34), stats.CollectionCount)
	assert.Equal(t, int64(87), stats.TotalArtworks)
	assert.Equal(t, "5.00 GB", stats.Storage.Used)
	assert.Equal(t, "10 GB", stats.Storage.Total)
	assert.Equal(t, 50, stats.Storage.Percentage)
}

func TestDashboardStatsCapsPercentage(t *testing.T) {
	svc := NewDashboardService(
		fixedArtistStats{},
		fixedCollectionStats{},
		fixedStorage{bytes: 30 << 30},
		10<<30,
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Storage.Percentage)
}

func TestDashboardStatsDegradesWhenStorageDown(t *testing.T) {
	svc := NewDashboardService(
		fixedArtistStats{count: 3, artworks: 9},
		fixedCollectionStats{count: 4},
		failingStorage{},
		10<<30,
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ArtistCount)
	assert.Equal(t, 0, stats.Storage.Percentage)
	assert.Equal(t, "0.00 MB", stats.Storage.Used)
	assert.Equal(t, "10 GB", stats.Storage.Total)
}
