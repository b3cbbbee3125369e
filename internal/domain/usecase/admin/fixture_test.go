package admin

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/access"
	mockcore "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/core"
	mockidentity "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/identity"
	mockpersistence "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

// store backs the repository mocks. Writes go straight to the maps; a
// failed unit of work restores the snapshot taken when it began.
type store struct {
	users   map[string]*entity.User
	bunks   map[string]*entity.Bunk
	config  *entity.GlobalConfig
	records []*entity.Transaction
}

type fixture struct {
	store      *store
	service    *Service
	identities *mockidentity.MockProvider
	sessions   *mockidentity.MockSessionRevoker
}

func newStore() *store {
	s := &store{
		users: map[string]*entity.User{},
		bunks: map[string]*entity.Bunk{},
		config: &entity.GlobalConfig{
			CreditPercentage: decimal.NewFromInt(10),
			RedemptionRate:   decimal.NewFromInt(1),
		},
	}
	s.addUser("admin-1", entity.RoleAdmin, "")
	return s
}

func (s *store) addUser(id string, role entity.Role, bunkID string) *entity.User {
	u := &entity.User{ID: id, Role: role, IsVerified: true}
	if bunkID != "" {
		b := bunkID
		u.AssignedBunkID = &b
	}
	s.users[id] = u
	return u
}

func (s *store) addBunk(id, name string, managers ...string) *entity.Bunk {
	b := &entity.Bunk{
		ID: id, Name: name, Location: "NH 48", District: "Thane", State: "MH", Pincode: "400601",
		ManagerIDs: append([]string{}, managers...),
	}
	s.bunks[id] = b
	return b
}

func (s *store) snapshot() *store {
	cp := &store{users: map[string]*entity.User{}, bunks: map[string]*entity.Bunk{}}
	for id, u := range s.users {
		c := *u
		cp.users[id] = &c
	}
	for id, b := range s.bunks {
		c := *b
		c.ManagerIDs = slices.Clone(b.ManagerIDs)
		cp.bunks[id] = &c
	}
	if s.config != nil {
		c := *s.config
		cp.config = &c
	}
	cp.records = slices.Clone(s.records)
	return cp
}

func (s *store) restore(from *store) {
	s.users, s.bunks, s.config, s.records = from.users, from.bunks, from.config, from.records
}

func (s *store) recordsOf(txType entity.TransactionType) []*entity.Transaction {
	var out []*entity.Transaction
	for _, r := range s.records {
		if r.Type == txType {
			out = append(out, r)
		}
	}
	return out
}

func newFixture(t *testing.T, s *store) *fixture {
	t.Helper()

	userRepo := mockpersistence.NewMockUserRepository(t)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*entity.User, error) {
			u, ok := s.users[id]
			if !ok {
				return nil, errs.ErrUserNotFound
			}
			c := *u
			return &c, nil
		}).Maybe()
	userRepo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, u *entity.User) error {
			if _, ok := s.users[u.ID]; !ok {
				return errs.ErrUserNotFound
			}
			c := *u
			s.users[u.ID] = &c
			return nil
		}).Maybe()

	bunkRepo := mockpersistence.NewMockBunkRepository(t)
	bunkRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*entity.Bunk, error) {
			b, ok := s.bunks[id]
			if !ok {
				return nil, errs.ErrBunkNotFound
			}
			c := *b
			c.ManagerIDs = slices.Clone(b.ManagerIDs)
			return &c, nil
		}).Maybe()
	bunkRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *entity.Bunk) error {
			c := *b
			s.bunks[b.ID] = &c
			return nil
		}).Maybe()
	bunkRepo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *entity.Bunk) error {
			if _, ok := s.bunks[b.ID]; !ok {
				return errs.ErrBunkNotFound
			}
			c := *b
			s.bunks[b.ID] = &c
			return nil
		}).Maybe()
	bunkRepo.EXPECT().Delete(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) error {
			if _, ok := s.bunks[id]; !ok {
				return errs.ErrBunkNotFound
			}
			delete(s.bunks, id)
			return nil
		}).Maybe()
	bunkRepo.EXPECT().List(mock.Anything).RunAndReturn(
		func(context.Context) ([]*entity.Bunk, error) {
			out := make([]*entity.Bunk, 0, len(s.bunks))
			for _, b := range s.bunks {
				out = append(out, b)
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
			return out, nil
		}).Maybe()

	configRepo := mockpersistence.NewMockConfigRepository(t)
	configRepo.EXPECT().Get(mock.Anything).RunAndReturn(
		func(context.Context) (*entity.GlobalConfig, error) {
			if s.config == nil {
				return nil, errs.ErrConfigNotFound
			}
			c := *s.config
			return &c, nil
		}).Maybe()
	configRepo.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, c *entity.GlobalConfig) error {
			cp := *c
			s.config = &cp
			return nil
		}).Maybe()

	txRepo := mockpersistence.NewMockTransactionRepository(t)
	txRepo.EXPECT().Append(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *entity.Transaction) error {
			s.records = append(s.records, r)
			return nil
		}).Maybe()
	txRepo.EXPECT().List(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, f persistence.TransactionFilter) ([]*entity.Transaction, error) {
			out := slices.Clone(s.records)
			slices.Reverse(out)
			if f.Limit > 0 && len(out) > f.Limit {
				out = out[:f.Limit]
			}
			return out, nil
		}).Maybe()

	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetUserRepository(mock.Anything).Return(userRepo).Maybe()
	uow.EXPECT().GetBunkRepository(mock.Anything).Return(bunkRepo).Maybe()
	uow.EXPECT().GetConfigRepository(mock.Anything).Return(configRepo).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txRepo).Maybe()
	uow.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			saved := s.snapshot()
			if err := fn(ctx); err != nil {
				s.restore(saved)
				return err
			}
			return nil
		}).Maybe()

	timeProvider := mockcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(0).Maybe()

	counter := 0
	ids := mockcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID().RunAndReturn(func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}).Maybe()

	metrics := mockcore.NewMockLedgerMetrics(t)
	metrics.EXPECT().ObserveOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()

	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	identities := mockidentity.NewMockProvider(t)
	sessions := mockidentity.NewMockSessionRevoker(t)

	resolver := access.NewResolver(uow, logger)
	return &fixture{
		store:      s,
		service:    NewService(uow, resolver, identities, sessions, ids, timeProvider, metrics, logger),
		identities: identities,
		sessions:   sessions,
	}
}
