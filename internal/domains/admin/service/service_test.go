package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	model "realestate-backend/internal/domains/admin"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/pkg/jwt"
)

type fakeRepo struct {
	byEmail map[string]*model.Admin
	byID    map[string]*model.Admin

	created    *model.Admin
	lastSet    map[string]interface{}
	loginTouch string
	deletedID  string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: map[string]*model.Admin{},
		byID:    map[string]*model.Admin{},
	}
}

func (f *fakeRepo) add(a *model.Admin) {
	f.byEmail[a.Email] = a
	f.byID[a.ID.Hex()] = a
}

func (f *fakeRepo) Create(_ context.Context, a *model.Admin) error {
	a.ID = primitive.NewObjectID()
	f.created = a
	f.add(a)
	return nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	return f.byEmail[email], nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, model.ErrAdminNotFound
}

func (f *fakeRepo) List(_ context.Context, _ model.AdminQuery, _, _ int64) ([]model.Admin, error) {
	out := []model.Admin{}
	for _, a := range f.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeRepo) Count(_ context.Context, _ model.AdminQuery) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeRepo) CountActive(_ context.Context, active bool) (int64, error) {
	var n int64
	for _, a := range f.byID {
		if a.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, set map[string]interface{}) (*model.Admin, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	f.lastSet = set
	if v, ok := set["isActive"].(bool); ok {
		a.IsActive = v
	}
	if v, ok := set["name"].(string); ok {
		a.Name = v
	}
	return a, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return model.ErrAdminNotFound
	}
	f.deletedID = id
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) TouchLastLogin(_ context.Context, id string) error {
	f.loginTouch = id
	return nil
}

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 1)
}

func seededAdmin(t *testing.T, password string, active bool) *model.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Admin{
		ID:       primitive.NewObjectID(),
		Name:     "Seed Admin",
		Email:    "seed@example.com",
		Password: string(hash),
		Role:     model.RoleAdmin,
		IsActive: active,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a token and touches last login", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", true)
		repo.add(account)
		svc := NewService(repo, testManager())

		token, view, err := svc.Login(ctx, &model.LoginRequest{Email: "Seed@Example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, account.Email, view.Email)
		assert.Equal(t, account.ID.Hex(), repo.loginTouch)

		claims, err := testManager().ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, account.ID.Hex(), claims.AdminID)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewService(newFakeRepo(), testManager())

		_, _, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(seededAdmin(t, "secret123", true))
		svc := NewService(repo, testManager())

		_, _, err := svc.Login(ctx, &model.LoginRequest{Email: "seed@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Empty(t, repo.loginTouch)
	})

	t.Run("deactivated account", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(seededAdmin(t, "secret123", false))
		svc := NewService(repo, testManager())

		_, _, err := svc.Login(ctx, &model.LoginRequest{Email: "seed@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, model.ErrAccountDeactivated)
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc := NewService(newFakeRepo(), testManager())

		_, _, err := svc.Login(ctx, &model.LoginRequest{Email: "seed@example.com"})
		assert.ErrorIs(t, err, model.ErrMissingCredentials)
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token for active account", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", true)
		repo.add(account)
		svc := NewService(repo, testManager())

		token, err := testManager().GenerateToken(account.ID.Hex(), account.Email, account.Role)
		require.NoError(t, err)

		view, err := svc.VerifyToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, account.Email, view.Email)
	})

	t.Run("empty token", func(t *testing.T) {
		svc := NewService(newFakeRepo(), testManager())

		_, err := svc.VerifyToken(ctx, "")
		assert.ErrorIs(t, err, model.ErrTokenRequired)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewService(newFakeRepo(), testManager())

		_, err := svc.VerifyToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("token for deactivated account", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", false)
		repo.add(account)
		svc := NewService(repo, testManager())

		token, err := testManager().GenerateToken(account.ID.Hex(), account.Email, account.Role)
		require.NoError(t, err)

		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("token for deleted account", func(t *testing.T) {
		svc := NewService(newFakeRepo(), testManager())

		token, err := testManager().GenerateToken(primitive.NewObjectID().Hex(), "ghost@example.com", model.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password before storing", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, testManager())

		view, err := svc.CreateAdmin(ctx, &model.CreateAdminRequest{
			Name: "New Admin", Email: "new@example.com", Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", view.Email)
		assert.Equal(t, model.RoleAdmin, view.Role)

		require.NotNil(t, repo.created)
		assert.NotEqual(t, "secret123", repo.created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("secret123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(seededAdmin(t, "secret123", true))
		svc := NewService(repo, testManager())

		_, err := svc.CreateAdmin(ctx, &model.CreateAdminRequest{
			Name: "Dup", Email: "seed@example.com", Password: "secret123",
		})
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("bootstrap forces super-admin role", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, testManager())

		view, err := svc.CreateInitialAdmin(ctx, &model.CreateAdminRequest{
			Name: "Root", Email: "root@example.com", Password: "secret123", Role: model.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, model.RoleSuperAdmin, view.Role)
	})
}

func TestAdminSelfProtection(t *testing.T) {
	ctx := context.Background()

	t.Run("cannot delete own account", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", true)
		repo.add(account)
		svc := NewService(repo, testManager())

		err := svc.DeleteAdmin(ctx, account.ID.Hex(), account.ID.Hex())
		assert.ErrorIs(t, err, model.ErrSelfDelete)
		assert.Empty(t, repo.deletedID)
	})

	t.Run("deletes another account", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", true)
		repo.add(account)
		svc := NewService(repo, testManager())

		err := svc.DeleteAdmin(ctx, account.ID.Hex(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Equal(t, account.ID.Hex(), repo.deletedID)
	})

	t.Run("cannot toggle own status", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", true)
		repo.add(account)
		svc := NewService(repo, testManager())

		_, err := svc.ToggleStatus(ctx, account.ID.Hex(), account.ID.Hex())
		assert.ErrorIs(t, err, model.ErrSelfStatusChange)
	})

	t.Run("toggle flips the flag", func(t *testing.T) {
		repo := newFakeRepo()
		account := seededAdmin(t, "secret123", true)
		repo.add(account)
		svc := NewService(repo, testManager())

		view, err := svc.ToggleStatus(ctx, account.ID.Hex(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.False(t, view.IsActive)
		assert.Equal(t, false, repo.lastSet["isActive"])
	})
}

func TestListAdmins(t *testing.T) {
	repo := newFakeRepo()
	active := seededAdmin(t, "secret123", true)
	repo.add(active)

	inactive := seededAdmin(t, "secret123", false)
	inactive.Email = "inactive@example.com"
	repo.add(inactive)

	svc := NewService(repo, testManager())

	views, meta, activeCount, inactiveCount, err := svc.ListAdmins(context.Background(),
		model.AdminQuery{}, pagination.FromInts(1, 20, DefaultListLimit))
	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, int64(2), meta.Total)
	assert.Equal(t, int64(1), activeCount)
	assert.Equal(t, int64(1), inactiveCount)
}

func TestUpdateAdminHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	account := seededAdmin(t, "secret123", true)
	repo.add(account)
	svc := NewService(repo, testManager())

	newPassword := "rotated-secret"
	_, err := svc.UpdateAdmin(context.Background(), account.ID.Hex(), &model.UpdateAdminRequest{
		Password: &newPassword,
	})
	require.NoError(t, err)

	hash, ok := repo.lastSet["password"].(string)
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(newPassword)))
}
