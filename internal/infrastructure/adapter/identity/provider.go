package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const roleClaim = "role"

// Provider is a database-backed identity.Provider with bcrypt password hashes
type Provider struct {
	repo         *repository.IdentityRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cost         int
}

var _ identityport.Provider = (*Provider)(nil)

// NewProvider creates a new Provider. A cost outside bcrypt's range falls
// back to bcrypt.DefaultCost.
func NewProvider(repo *repository.IdentityRepository, timeProvider coreport.TimeProvider, logger coreport.Logger, cost int) *Provider {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Provider{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
		cost:         cost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toIdentity(m *model.Identity) *identityport.Identity {
	claims := make(map[string]string, len(m.Claims))
	for k, v := range m.Claims {
		if s, ok := v.(string); ok {
			claims[k] = s
		}
	}
	return &identityport.Identity{
		UID:             m.UID,
		Email:           m.Email,
		Phone:           m.Phone,
		ContactVerified: m.ContactVerified,
		Claims:          claims,
		CreatedAt:       m.CreatedAt.UTC(),
	}
}

// Create stores new credentials
func (p *Provider) Create(ctx context.Context, identity identityport.NewIdentity) (*identityport.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(identity.Password), p.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errs.Invalidf("password is too long")
		}
		p.logger.Error("Failed to hash password", map[string]any{"uid": identity.UID, "error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	now := p.timeProvider.Now()
	record := &model.Identity{
		UID:          identity.UID,
		Email:        normalizeEmail(identity.Email),
		Phone:        identity.Phone,
		PasswordHash: string(hash),
		Claims:       datatypes.JSONMap{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	p.logger.Info("Identity created", map[string]any{"uid": record.UID})
	return toIdentity(record), nil
}

// Get looks up an identity by uid
func (p *Provider) Get(ctx context.Context, uid string) (*identityport.Identity, error) {
	record, err := p.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toIdentity(record), nil
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (*identityport.Identity, error) {
	record, err := p.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		p.logger.Debug("Password mismatch", map[string]any{"uid": record.UID})
		return nil, errs.ErrUnauthenticated
	}
	return toIdentity(record), nil
}

// SetRoleClaims replaces all claims with {role: role}
func (p *Provider) SetRoleClaims(ctx context.Context, uid string, role entity.Role) error {
	if err := p.repo.UpdateFields(ctx, uid, map[string]any{
		"claims": datatypes.JSONMap{roleClaim: string(role)},
	}); err != nil {
		return err
	}
	p.logger.Debug("Role claims replaced", map[string]any{"uid": uid, "role": string(role)})
	return nil
}

// MarkContactVerified records that the contact method was confirmed
func (p *Provider) MarkContactVerified(ctx context.Context, uid string) error {
	return p.repo.UpdateFields(ctx, uid, map[string]any{"contact_verified": true})
}

// Delete removes the identity
func (p *Provider) Delete(ctx context.Context, uid string) error {
	if err := p.repo.Delete(ctx, uid); err != nil {
		return err
	}
	p.logger.Info("Identity deleted", map[string]any{"uid": uid})
	return nil
}
