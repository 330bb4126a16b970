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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = gorm.ErrRecordNotFound

type PaymentDAO interface {
	Create(ctx context.Context, p Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	UpdateStatusByOrderSN(ctx context.Context, orderSN string, status uint8, paidAt int64) error
	List(ctx context.Context, offset, limit int) ([]Payment, error)
	Count(ctx context.Context) (int64, error)
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &gormPaymentDAO{db: db}
}

type gormPaymentDAO struct {
	db *egorm.Component
}

func (g *gormPaymentDAO) Create(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *gormPaymentDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (g *gormPaymentDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).First(&res, "order_sn = ?", orderSN).Error
	return res, err
}

func (g *gormPaymentDAO) UpdateStatusByOrderSN(ctx context.Context, orderSN string, status uint8, paidAt int64) error {
	updates := map[string]any{
		"Status": status,
		"Utime":  time.Now().UnixMilli(),
	}
	if paidAt > 0 {
		updates["PaidAt"] = paidAt
	}
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("order_sn = ?", orderSN).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (g *gormPaymentDAO) List(ctx context.Context, offset, limit int) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormPaymentDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Payment{}).Count(&res).Error
	return res, err
}

type Payment struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	OrderId     int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	OrderSn     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	PayerId     int64  `gorm:"not null;index:idx_payer_id;comment:支付者ID"`
	TotalAmount int64  `gorm:"not null;comment:支付总金额;单位为分, 999表示9.99元"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待支付 2=已核验 3=已支付 4=已拒绝 5=已取消 6=已转账"`
	PaidAt      int64  `gorm:"comment:支付时间"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}
