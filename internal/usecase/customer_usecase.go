package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
}

func NewCustomerUsecase(customerRepo repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo}
}

type CreateCustomerInput struct {
	Name    string
	Phone   string
	Address string
}

type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Address *string
}

func (u *CustomerUsecase) Create(ctx context.Context, in CreateCustomerInput) (model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Customer{}, NewError(KindInvalidRequest, "name is required")
	}

	c := model.Customer{
		Name:    name,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}

	id, err := u.customerRepo.Create(ctx, c)
	if err != nil {
		return model.Customer{}, NewError(KindTransactionFailure, "db error")
	}
	c.ID = id
	return c, nil
}

func (u *CustomerUsecase) List(ctx context.Context) ([]model.Customer, error) {
	items, err := u.customerRepo.List(ctx)
	if err != nil {
		return []model.Customer{}, NewError(KindTransactionFailure, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewError(KindInvalidRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewError(KindNotFound, fmt.Sprintf("customer %d not found", customerID))
	}
	if err != nil {
		return model.Customer{}, NewError(KindTransactionFailure, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, customerID int64, in UpdateCustomerInput) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewError(KindInvalidRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewError(KindNotFound, fmt.Sprintf("customer %d not found", customerID))
	}
	if err != nil {
		return model.Customer{}, NewError(KindTransactionFailure, "db error")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Customer{}, NewError(KindInvalidRequest, "name is required")
		}
		c.Name = name
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}

	if err := u.customerRepo.Save(ctx, c); err != nil {
		return model.Customer{}, NewError(KindTransactionFailure, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewError(KindInvalidRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewError(KindNotFound, fmt.Sprintf("customer %d not found", customerID))
	}
	if err != nil {
		return model.Customer{}, NewError(KindTransactionFailure, "db error")
	}

	if err := u.customerRepo.Delete(ctx, customerID); err != nil {
		return model.Customer{}, NewError(KindTransactionFailure, "db error")
	}
	return c, nil
}
