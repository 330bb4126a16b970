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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// 与 domain 中的状态常量对应, 过期关单只针对已下单未支付的订单
const (
	statusOrdered   uint8 = 1
	statusCancelled uint8 = 7
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 带状态前置条件的更新没有命中任何行,
	// 说明并发请求已经抢先改过状态
	ErrStatusConflict = errors.New("订单状态已被并发修改")
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	UpdatePaymentInfo(ctx context.Context, oid int64, pid int64, psn string) error
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	// UpdateStatus 以当前状态为前置条件更新, 竞争失败返回 ErrStatusConflict
	UpdateStatus(ctx context.Context, sn string, current, requested uint8) error
	CreateStatusOverride(ctx context.Context, sn string, requested uint8, log StatusOverrideLog) error
	List(ctx context.Context, offset, limit int, uid int64) ([]Order, error)
	Count(ctx context.Context, uid int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]Order, error)
	CountAll(ctx context.Context) (int64, error)
	ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	CountExpired(ctx context.Context, ctime int64) (int64, error)
	// CloseExpiredOrders 批量取消超时未支付的订单, 只作用于仍处于已下单状态的行
	CloseExpiredOrders(ctx context.Context, orderIDs []int64, closedAt int64) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return o.Id, err
}

func (g *gormOrderDAO) UpdatePaymentInfo(ctx context.Context, oid int64, pid int64, psn string) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", oid).
		Updates(map[string]any{
			"PaymentId": pid,
			"PaymentSn": psn,
			"Utime":     time.Now().UnixMilli(),
		}).Error
}

func (g *gormOrderDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (g *gormOrderDAO) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).First(&res, "sn = ? AND buyer_id = ?", sn, buyerID).Error
	return res, err
}

func (g *gormOrderDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := g.db.WithContext(ctx).Find(&res, "order_id = ?", oid).Error
	return res, err
}

func (g *gormOrderDAO) UpdateStatus(ctx context.Context, sn string, current, requested uint8) error {
	return g.updateStatusGuarded(g.db.WithContext(ctx), sn, current, requested)
}

func (g *gormOrderDAO) updateStatusGuarded(tx *gorm.DB, sn string, current, requested uint8) error {
	updates := map[string]any{
		"Status": requested,
		"Utime":  time.Now().UnixMilli(),
	}
	res := tx.Model(&Order{}).
		Where("sn = ? AND status = ?", sn, current).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *gormOrderDAO) CreateStatusOverride(ctx context.Context, sn string, requested uint8, log StatusOverrideLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := g.updateStatusGuarded(tx, sn, log.Before, requested); err != nil {
			return err
		}
		log.Ctime = time.Now().UnixMilli()
		return tx.Create(&log).Error
	})
}

func (g *gormOrderDAO) List(ctx context.Context, offset, limit int, uid int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").Find(&res, "buyer_id = ?", uid).Error
	return res, err
}

func (g *gormOrderDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", uid).Count(&res).Error
	return res, err
}

func (g *gormOrderDAO) ListAll(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormOrderDAO) CountAll(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (g *gormOrderDAO) ListExpired(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res, "status = ? AND ctime < ?", statusOrdered, ctime).Error
	return res, err
}

func (g *gormOrderDAO) CountExpired(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime < ?", statusOrdered, ctime).Count(&res).Error
	return res, err
}

func (g *gormOrderDAO) CloseExpiredOrders(ctx context.Context, orderIDs []int64, closedAt int64) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND status = ?", orderIDs, statusOrdered).
		Updates(map[string]any{
			"Status":   statusCancelled,
			"ClosedAt": closedAt,
			"Utime":    time.Now().UnixMilli(),
		}).Error
}

type Order struct {
	Id                 int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN                 string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId            int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	PaymentId          int64  `gorm:"comment:支付自增ID"`
	PaymentSn          string `gorm:"type:varchar(255);comment:支付序列号"`
	OriginalTotalPrice int64  `gorm:"not null;comment:原始总价;单位为分, 999表示9.99元"`
	TotalDiscount      int64  `gorm:"not null;default:0;comment:折扣金额;单位为分"`
	RealTotalPrice     int64  `gorm:"not null;comment:实付总价;单位为分, 999表示9.99元"`
	AppliedPromotionId int64  `gorm:"comment:命中的活动ID, 0表示无"`
	Status             uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=已下单 2=已支付 3=打印中 4=已发货 5=已激活 6=已拒绝 7=已取消 8=已丢失"`
	ClosedAt           int64  `gorm:"comment:订单关闭时间"`
	Ctime              int64
	Utime              int64
}

type OrderItem struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId       int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	SKU           string `gorm:"type:varchar(255);not null;index:idx_sku;comment:贴纸SKU"`
	Name          string `gorm:"type:varchar(255);not null;comment:贴纸名称"`
	OriginalPrice int64  `gorm:"not null;comment:原始单价;单位为分"`
	RealPrice     int64  `gorm:"not null;comment:实付单价;单位为分"`
	Quantity      int64  `gorm:"not null;comment:购买数量"`
	Ctime         int64
	Utime         int64
}

type StatusOverrideLog struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:审计记录自增ID"`
	OrderSn  string `gorm:"type:varchar(255);not null;index:idx_order_sn;comment:订单序列号"`
	AdminUid int64  `gorm:"not null;comment:操作的管理员ID"`
	Before   uint8  `gorm:"type:tinyint unsigned;not null;comment:修正前状态"`
	After    uint8  `gorm:"type:tinyint unsigned;not null;comment:修正后状态"`
	Reason   string `gorm:"not null;comment:修正原因"`
	Ctime    int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{}, &StatusOverrideLog{})
}
