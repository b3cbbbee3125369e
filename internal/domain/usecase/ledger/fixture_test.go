package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/usecase/access"
	mockcore "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// store is an in-memory backing for the repository mocks. Reads return
// copies so that a failed unit of work leaves nothing behind.
type store struct {
	users   map[string]*entity.User
	bunks   map[string]*entity.Bunk
	config  *entity.GlobalConfig
	records []*entity.Transaction

	appendErr error
	executes  int
	// hiddenLookups makes the next request id lookups miss, as a concurrent
	// request that has not yet committed would
	hiddenLookups int
}

type fixture struct {
	store   *store
	service *Service
	metrics *mockcore.MockLedgerMetrics
}

func newStore() *store {
	return &store{
		users: map[string]*entity.User{},
		bunks: map[string]*entity.Bunk{},
		config: &entity.GlobalConfig{
			CreditPercentage: decimal.NewFromInt(10),
			RedemptionRate:   decimal.RequireFromString("1.5"),
		},
	}
}

func (s *store) addUser(id string, role entity.Role, verified bool, points int64, bunkID string) *entity.User {
	u := &entity.User{ID: id, Role: role, IsVerified: verified}
	if err := u.SetPoints(points); err != nil {
		panic(err)
	}
	if bunkID != "" {
		b := bunkID
		u.AssignedBunkID = &b
	}
	s.users[id] = u
	return u
}

func (s *store) addBunk(id, name string, managers ...string) *entity.Bunk {
	b := &entity.Bunk{
		ID:         id,
		Name:       name,
		Location:   "Main Road",
		District:   "Pune",
		State:      "MH",
		Pincode:    "411001",
		ManagerIDs: managers,
	}
	s.bunks[id] = b
	return b
}

func (s *store) points(id string) int64 {
	return s.users[id].Points()
}

func (s *store) getUser(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func newFixture(t *testing.T, s *store) *fixture {
	t.Helper()

	userRepo := mockpersistence.NewMockUserRepository(t)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(s.getUser).Maybe()
	userRepo.EXPECT().GetByIDForUpdate(mock.Anything, mock.Anything).RunAndReturn(s.getUser).Maybe()
	userRepo.EXPECT().UpdatePoints(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string, points int64) error {
			u, ok := s.users[id]
			if !ok {
				return errs.ErrUserNotFound
			}
			return u.SetPoints(points)
		}).Maybe()

	bunkRepo := mockpersistence.NewMockBunkRepository(t)
	bunkRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*entity.Bunk, error) {
			b, ok := s.bunks[id]
			if !ok {
				return nil, errs.ErrBunkNotFound
			}
			cp := *b
			return &cp, nil
		}).Maybe()

	configRepo := mockpersistence.NewMockConfigRepository(t)
	configRepo.EXPECT().Get(mock.Anything).RunAndReturn(
		func(context.Context) (*entity.GlobalConfig, error) {
			if s.config == nil {
				return nil, errs.ErrConfigNotFound
			}
			cp := *s.config
			return &cp, nil
		}).Maybe()

	txRepo := mockpersistence.NewMockTransactionRepository(t)
	txRepo.EXPECT().Append(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, record *entity.Transaction) error {
			if s.appendErr != nil {
				return s.appendErr
			}
			for _, r := range s.records {
				if record.RequestID != nil && r.RequestID != nil && *r.RequestID == *record.RequestID {
					return errs.ErrDuplicateRequest
				}
			}
			s.records = append(s.records, record)
			return nil
		}).Maybe()
	txRepo.EXPECT().GetByRequestID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, requestID string) (*entity.Transaction, error) {
			if s.hiddenLookups > 0 {
				s.hiddenLookups--
				return nil, errs.ErrNotFound
			}
			for _, r := range s.records {
				if r.RequestID != nil && *r.RequestID == requestID {
					return r, nil
				}
			}
			return nil, errs.ErrNotFound
		}).Maybe()

	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetUserRepository(mock.Anything).Return(userRepo).Maybe()
	uow.EXPECT().GetBunkRepository(mock.Anything).Return(bunkRepo).Maybe()
	uow.EXPECT().GetConfigRepository(mock.Anything).Return(configRepo).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txRepo).Maybe()
	uow.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			s.executes++
			// Snapshot balances so a failed attempt can be rolled back
			saved := map[string]int64{}
			for id, u := range s.users {
				saved[id] = u.Points()
			}
			recordCount := len(s.records)
			if err := fn(ctx); err != nil {
				for id, p := range saved {
					_ = s.users[id].SetPoints(p)
				}
				s.records = s.records[:recordCount]
				return err
			}
			return nil
		}).Maybe()

	timeProvider := mockcore.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(0).Maybe()

	ids := mockcore.NewMockIDGenerator(t)
	counter := 0
	ids.EXPECT().NewID().RunAndReturn(func() string {
		counter++
		return fmt.Sprintf("tx-%d", counter)
	}).Maybe()

	metrics := mockcore.NewMockLedgerMetrics(t)
	metrics.EXPECT().ObserveOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().AddPoints(mock.Anything, mock.Anything).Maybe()

	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	resolver := access.NewResolver(uow, logger)
	return &fixture{
		store:   s,
		service: NewService(uow, resolver, ids, timeProvider, metrics, logger),
		metrics: metrics,
	}
}

// standardStore has manager m1 at bunk b1, manager m2 at b2 and a verified customer c1
func standardStore() *store {
	s := newStore()
	s.addBunk("b1", "Central Fuel", "m1")
	s.addBunk("b2", "Highway Fuel", "m2")
	s.addUser("m1", entity.RoleManager, true, 0, "b1")
	s.addUser("m2", entity.RoleManager, true, 0, "b2")
	s.addUser("c1", entity.RoleCustomer, true, 0, "")
	s.addUser("c2", entity.RoleCustomer, false, 0, "")
	s.addUser("a1", entity.RoleAdmin, true, 0, "")
	return s
}
