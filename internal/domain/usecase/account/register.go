package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

func validateRegistration(req usecase.RegisterCustomerRequest) error {
	switch {
	case req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "":
		return errs.Invalidf("firstName, lastName, email and password are required")
	case !validation.IsValidFirstName(req.FirstName):
		return errs.Invalidf("first name must be 1-40 letters with no spaces")
	case !validation.IsValidLastName(req.LastName):
		return errs.Invalidf("last name must be 1-80 letters with at most two spaces")
	case !validation.IsValidEmail(req.Email):
		return errs.Invalidf("invalid email format")
	case req.Phone != "" && !validation.IsValidPhone(req.Phone):
		return errs.Invalidf("phone must be 10 digits")
	case !validation.IsValidPassword(req.Password):
		return errs.Invalidf("password must be at least 6 characters long")
	}
	return nil
}

// RegisterCustomer creates the identity and then the customer record. When
// the record cannot be written the identity is removed again.
func (s *Service) RegisterCustomer(ctx context.Context, req usecase.RegisterCustomerRequest) (string, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validateRegistration(req); err != nil {
		return "", err
	}

	created, err := s.identities.Create(ctx, identity.NewIdentity{
		UID:      s.idGenerator.NewID(),
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return "", s.internal("register_customer", "", err)
	}

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		user, err := entity.NewCustomer(created.UID, req.FirstName, req.LastName, req.Email, req.Phone, s.timeProvider)
		if err != nil {
			return err
		}
		if err := s.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}
		return s.audit(txCtx, entity.TypeCustomerRegistration, user.ID, entity.RoleCustomer, map[string]any{
			entity.DetailTargetUID: user.ID,
			"email":                req.Email,
			"firstName":            req.FirstName,
			"lastName":             req.LastName,
		})
	})
	if err != nil {
		if delErr := s.identities.Delete(ctx, created.UID); delErr != nil {
			s.logger.Error("Failed to remove identity after registration failure", map[string]any{
				"uid":   created.UID,
				"error": delErr.Error(),
			})
		}
		return "", s.internal("register_customer", created.UID, err)
	}

	s.logger.Info("Customer registered", map[string]any{"uid": created.UID})
	return created.UID, nil
}
