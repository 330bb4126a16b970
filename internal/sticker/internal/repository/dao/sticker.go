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

var ErrStickerNotFound = gorm.ErrRecordNotFound

type StickerDAO interface {
	BatchInsert(ctx context.Context, stickers []Sticker) error
	FindBySlug(ctx context.Context, slug string) (Sticker, error)
	FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (Sticker, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]Sticker, error)
	FindByOrderSN(ctx context.Context, orderSN string) ([]Sticker, error)
	// UpdateStatusByOrderSN 订单状态变更时批量同步同一订单下的所有贴纸
	UpdateStatusByOrderSN(ctx context.Context, orderSN string, status uint8) error
	LinkProfile(ctx context.Context, id, ownerID, profileID int64) error
}

func NewStickerGORMDAO(db *egorm.Component) StickerDAO {
	return &gormStickerDAO{db: db}
}

type gormStickerDAO struct {
	db *egorm.Component
}

func (g *gormStickerDAO) BatchInsert(ctx context.Context, stickers []Sticker) error {
	now := time.Now().UnixMilli()
	for i := range stickers {
		stickers[i].Ctime, stickers[i].Utime = now, now
	}
	return g.db.WithContext(ctx).Create(&stickers).Error
}

func (g *gormStickerDAO) FindBySlug(ctx context.Context, slug string) (Sticker, error) {
	var res Sticker
	err := g.db.WithContext(ctx).First(&res, "slug = ?", slug).Error
	return res, err
}

func (g *gormStickerDAO) FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (Sticker, error) {
	var res Sticker
	err := g.db.WithContext(ctx).First(&res, "id = ? AND owner_id = ?", id, ownerID).Error
	return res, err
}

func (g *gormStickerDAO) FindByOwnerID(ctx context.Context, ownerID int64) ([]Sticker, error) {
	var res []Sticker
	err := g.db.WithContext(ctx).Order("id DESC").Find(&res, "owner_id = ?", ownerID).Error
	return res, err
}

func (g *gormStickerDAO) FindByOrderSN(ctx context.Context, orderSN string) ([]Sticker, error) {
	var res []Sticker
	err := g.db.WithContext(ctx).Find(&res, "order_sn = ?", orderSN).Error
	return res, err
}

func (g *gormStickerDAO) UpdateStatusByOrderSN(ctx context.Context, orderSN string, status uint8) error {
	return g.db.WithContext(ctx).Model(&Sticker{}).
		Where("order_sn = ?", orderSN).
		Updates(map[string]any{
			"Status": status,
			"Utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *gormStickerDAO) LinkProfile(ctx context.Context, id, ownerID, profileID int64) error {
	res := g.db.WithContext(ctx).Model(&Sticker{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{
			"ProfileId": profileID,
			"Utime":     time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStickerNotFound
	}
	return nil
}

type Sticker struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:贴纸自增ID"`
	Slug      string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_sticker_slug;comment:贴纸唯一标识, 烧录进NFC芯片"`
	OwnerId   int64  `gorm:"not null;index:idx_owner_id;comment:归属用户ID"`
	OrderSn   string `gorm:"type:varchar(255);not null;index:idx_order_sn;comment:来源订单序列号"`
	ProfileId int64  `gorm:"comment:关联的急救资料ID, 0表示未关联"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:贴纸状态 1=待生产 2=打印中 3=已发货 4=已激活 5=已丢失"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Sticker{})
}
