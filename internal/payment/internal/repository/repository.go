// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/safetap/internal/payment/internal/domain"
	"github.com/ecodeclub/safetap/internal/payment/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

//go:generate mockgen -source=repository.go -package=repomocks -destination=./mocks/repository.mock.go PaymentRepository
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p domain.Payment) (domain.Payment, error)
	FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	UpdateStatusByOrderSN(ctx context.Context, orderSN string, status domain.Status, paidAt int64) error
	ListPayments(ctx context.Context, offset, limit int) ([]domain.Payment, error)
	TotalPayments(ctx context.Context) (int64, error)
}

func NewRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{d: d}
}

type paymentRepository struct {
	d dao.PaymentDAO
}

func (p *paymentRepository) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	pid, err := p.d.Create(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = pid
	return pmt, nil
}

func (p *paymentRepository) FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := p.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := p.d.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) UpdateStatusByOrderSN(ctx context.Context, orderSN string, status domain.Status, paidAt int64) error {
	return p.d.UpdateStatusByOrderSN(ctx, orderSN, status.ToUint8(), paidAt)
}

func (p *paymentRepository) ListPayments(ctx context.Context, offset, limit int) ([]domain.Payment, error) {
	ps, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Payment) domain.Payment {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) TotalPayments(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:          pmt.ID,
		SN:          pmt.SN,
		OrderId:     pmt.OrderID,
		OrderSn:     pmt.OrderSN,
		PayerId:     pmt.PayerID,
		TotalAmount: pmt.TotalAmount,
		Status:      pmt.Status.ToUint8(),
		PaidAt:      pmt.PaidAt,
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          pmt.Id,
		SN:          pmt.SN,
		OrderID:     pmt.OrderId,
		OrderSN:     pmt.OrderSn,
		PayerID:     pmt.PayerId,
		TotalAmount: pmt.TotalAmount,
		Status:      domain.Status(pmt.Status),
		PaidAt:      pmt.PaidAt,
		Ctime:       pmt.Ctime,
		Utime:       pmt.Utime,
	}
}
