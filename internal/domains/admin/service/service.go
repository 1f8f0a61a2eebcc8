package admin

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	model "realestate-backend/internal/domains/admin"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/pkg/jwt"
	"realestate-backend/pkg/logger"
)

// DefaultListLimit caps the admin directory page size.
const DefaultListLimit = 20

type service struct {
	repo model.RepositoryInterface
	jwt  *jwt.Manager
}

func NewService(repo model.RepositoryInterface, jwtManager *jwt.Manager) model.ServiceInterface {
	return &service{repo: repo, jwt: jwtManager}
}

func (s *service) Login(ctx context.Context, req *model.LoginRequest) (string, *model.View, error) {
	email, password, err := req.Normalize()
	if err != nil {
		return "", nil, err
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if account == nil {
		return "", nil, model.ErrInvalidCredentials
	}
	if !account.IsActive {
		return "", nil, model.ErrAccountDeactivated
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return "", nil, model.ErrInvalidCredentials
	}

	if err := s.repo.TouchLastLogin(ctx, account.ID.Hex()); err != nil {
		// login still succeeds, lastLogin is advisory
		logger.Warn("failed to record admin login time", map[string]interface{}{"adminId": account.ID.Hex()})
	}

	token, err := s.jwt.GenerateToken(account.ID.Hex(), account.Email, account.Role)
	if err != nil {
		return "", nil, err
	}

	view := model.NewView(account)
	return token, &view, nil
}

func (s *service) VerifyToken(ctx context.Context, token string) (*model.View, error) {
	if token == "" {
		return nil, model.ErrTokenRequired
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, model.ErrInvalidToken
	}
	if !account.IsActive {
		return nil, model.ErrInvalidToken
	}

	view := model.NewView(account)
	return &view, nil
}

func (s *service) Profile(ctx context.Context, adminID string) (*model.View, error) {
	account, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	view := model.NewView(account)
	return &view, nil
}

func (s *service) ListAdmins(ctx context.Context, q model.AdminQuery, params pagination.Params) ([]model.View, *pagination.Meta, int64, int64, error) {
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	admins, err := s.repo.List(ctx, q, int64(params.Skip()), int64(params.Limit))
	if err != nil {
		return nil, nil, 0, 0, err
	}

	activeCount, err := s.repo.CountActive(ctx, true)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	inactiveCount, err := s.repo.CountActive(ctx, false)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	views := make([]model.View, 0, len(admins))
	for i := range admins {
		views = append(views, model.NewView(&admins[i]))
	}

	return views, pagination.NewMeta(params, total), activeCount, inactiveCount, nil
}

func (s *service) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.View, error) {
	return s.create(ctx, req, "")
}

// CreateInitialAdmin bootstraps the first super-admin account. The role
// in the request is ignored.
func (s *service) CreateInitialAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.View, error) {
	return s.create(ctx, req, model.RoleSuperAdmin)
}

func (s *service) create(ctx context.Context, req *model.CreateAdminRequest, forcedRole string) (*model.View, error) {
	account, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	if forcedRole != "" {
		account.Role = forcedRole
	}

	existing, err := s.repo.FindByEmail(ctx, account.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account.Password = string(hash)

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	view := model.NewView(account)
	return &view, nil
}

func (s *service) UpdateAdmin(ctx context.Context, id string, req *model.UpdateAdminRequest) (*model.View, error) {
	set, password, err := req.Changes()
	if err != nil {
		return nil, err
	}

	if email, ok := set["email"].(string); ok {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID.Hex() != id {
			return nil, model.ErrEmailTaken
		}
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		set["password"] = string(hash)
	}

	account, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}

	view := model.NewView(account)
	return &view, nil
}

func (s *service) DeleteAdmin(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return model.ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleStatus(ctx context.Context, id, actorID string) (*model.View, error) {
	if id == actorID {
		return nil, model.ErrSelfStatusChange
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, map[string]interface{}{"isActive": !account.IsActive})
	if err != nil {
		return nil, err
	}

	view := model.NewView(updated)
	return &view, nil
}
