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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/safetap/internal/payment/internal/domain"
	"github.com/ecodeclub/safetap/internal/payment/internal/repository"
	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPaymentNotFound      = repository.ErrPaymentNotFound
	ErrTransferNotAllowed   = errors.New("仅已支付的款项可标记为已转账")
	errUnknownPaymentStatus = errors.New("未知的支付状态")
)

//go:generate mockgen -source=service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	// SyncStatus 只接受经由订单状态映射推导出来的支付状态, 不允许独立改写
	SyncStatus(ctx context.Context, orderSN string, status domain.Status) error
	// MarkTransferred 后台对账, 已支付款项转账给供应商后标记
	MarkTransferred(ctx context.Context, paymentSN string) error
	ListPayments(ctx context.Context, offset, limit int) ([]domain.Payment, int64, error)
}

func NewService(repo repository.PaymentRepository, snGenerator *sequencenumber.Generator) Service {
	return &service{repo: repo, snGenerator: snGenerator}
}

type service struct {
	repo        repository.PaymentRepository
	snGenerator *sequencenumber.Generator
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	sn, err := s.snGenerator.Generate(pmt.PayerID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("生成支付序列号失败: %w", err)
	}
	pmt.SN = sn
	pmt.Status = domain.StatusPending
	return s.repo.CreatePayment(ctx, pmt)
}

func (s *service) FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	return s.repo.FindPaymentByOrderSN(ctx, orderSN)
}

func (s *service) SyncStatus(ctx context.Context, orderSN string, status domain.Status) error {
	if status < domain.StatusPending || status > domain.StatusTransferred {
		return fmt.Errorf("%w: %d", errUnknownPaymentStatus, status)
	}
	var paidAt int64
	if status == domain.StatusPaid {
		paidAt = time.Now().UnixMilli()
	}
	return s.repo.UpdateStatusByOrderSN(ctx, orderSN, status, paidAt)
}

func (s *service) MarkTransferred(ctx context.Context, paymentSN string) error {
	pmt, err := s.repo.FindPaymentBySN(ctx, paymentSN)
	if err != nil {
		return fmt.Errorf("查找支付记录失败: %w", err)
	}
	if pmt.Status != domain.StatusPaid {
		return fmt.Errorf("%w: 当前状态 %s", ErrTransferNotAllowed, pmt.Status)
	}
	return s.repo.UpdateStatusByOrderSN(ctx, pmt.OrderSN, domain.StatusTransferred, 0)
}

func (s *service) ListPayments(ctx context.Context, offset, limit int) ([]domain.Payment, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Payment
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.ListPayments(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalPayments(ctx)
		return err
	})
	return ps, total, eg.Wait()
}
