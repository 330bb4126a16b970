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

var (
	ErrPromotionNotFound    = gorm.ErrRecordNotFound
	ErrDiscountCodeNotFound = gorm.ErrRecordNotFound
)

type PromotionDAO interface {
	Save(ctx context.Context, p Promotion) (int64, error)
	FindById(ctx context.Context, id int64) (Promotion, error)
	FindActive(ctx context.Context) ([]Promotion, error)
	List(ctx context.Context, offset, limit int) ([]Promotion, error)
	Count(ctx context.Context) (int64, error)
	UpdateActive(ctx context.Context, id int64, active bool) error

	SaveDiscountCode(ctx context.Context, c DiscountCode) (int64, error)
	FindDiscountCodeByCode(ctx context.Context, code string) (DiscountCode, error)
	ListDiscountCodes(ctx context.Context, offset, limit int) ([]DiscountCode, error)
	CountDiscountCodes(ctx context.Context) (int64, error)
	UpdateDiscountCodeActive(ctx context.Context, id int64, active bool) error
}

func NewPromotionGORMDAO(db *egorm.Component) PromotionDAO {
	return &gormPromotionDAO{db: db}
}

type gormPromotionDAO struct {
	db *egorm.Component
}

func (g *gormPromotionDAO) Save(ctx context.Context, p Promotion) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := g.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	err := g.db.WithContext(ctx).Model(&Promotion{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"Name":        p.Name,
			"Description": p.Description,
			"MinQuantity": p.MinQuantity,
			"Type":        p.Type,
			"Value":       p.Value,
			"Active":      p.Active,
			"Priority":    p.Priority,
			"StartAt":     p.StartAt,
			"EndAt":       p.EndAt,
			"Utime":       p.Utime,
		}).Error
	return p.Id, err
}

func (g *gormPromotionDAO) FindById(ctx context.Context, id int64) (Promotion, error) {
	var res Promotion
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *gormPromotionDAO) FindActive(ctx context.Context) ([]Promotion, error) {
	var res []Promotion
	err := g.db.WithContext(ctx).
		Where("active = ?", true).
		Order("priority DESC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *gormPromotionDAO) List(ctx context.Context, offset, limit int) ([]Promotion, error) {
	var res []Promotion
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormPromotionDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Promotion{}).Count(&res).Error
	return res, err
}

func (g *gormPromotionDAO) UpdateActive(ctx context.Context, id int64, active bool) error {
	res := g.db.WithContext(ctx).Model(&Promotion{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"Active": active,
			"Utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPromotionNotFound
	}
	return nil
}

func (g *gormPromotionDAO) SaveDiscountCode(ctx context.Context, c DiscountCode) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := g.db.WithContext(ctx).Create(&c).Error
		return c.Id, err
	}
	err := g.db.WithContext(ctx).Model(&DiscountCode{}).
		Where("id = ?", c.Id).
		Updates(map[string]any{
			"Type":     c.Type,
			"Value":    c.Value,
			"MinTotal": c.MinTotal,
			"Active":   c.Active,
			"StartAt":  c.StartAt,
			"EndAt":    c.EndAt,
			"Utime":    c.Utime,
		}).Error
	return c.Id, err
}

func (g *gormPromotionDAO) FindDiscountCodeByCode(ctx context.Context, code string) (DiscountCode, error) {
	var res DiscountCode
	err := g.db.WithContext(ctx).First(&res, "code = ?", code).Error
	return res, err
}

func (g *gormPromotionDAO) ListDiscountCodes(ctx context.Context, offset, limit int) ([]DiscountCode, error) {
	var res []DiscountCode
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *gormPromotionDAO) CountDiscountCodes(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&DiscountCode{}).Count(&res).Error
	return res, err
}

func (g *gormPromotionDAO) UpdateDiscountCodeActive(ctx context.Context, id int64, active bool) error {
	res := g.db.WithContext(ctx).Model(&DiscountCode{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"Active": active,
			"Utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDiscountCodeNotFound
	}
	return nil
}

type Promotion struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:活动自增ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:活动名称"`
	Description string `gorm:"not null;comment:活动描述"`
	MinQuantity int64  `gorm:"not null;default:1;comment:触发所需最低购买数量"`
	Type        uint8  `gorm:"type:tinyint unsigned;not null;comment:折扣类型 1=百分比 2=固定金额"`
	Value       int64  `gorm:"not null;comment:折扣值;百分比时为百分点, 固定金额时单位为分"`
	Active      bool   `gorm:"not null;default:false;index:idx_active;comment:是否启用"`
	Priority    int64  `gorm:"not null;default:0;comment:优先级, 数值大者优先"`
	StartAt     int64  `gorm:"comment:生效时间, 0表示不限"`
	EndAt       int64  `gorm:"comment:失效时间, 0表示不限"`
	Ctime       int64
	Utime       int64
}

type DiscountCode struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:优惠码自增ID"`
	Code     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_code;comment:优惠码"`
	Type     uint8  `gorm:"type:tinyint unsigned;not null;comment:折扣类型 1=百分比 2=固定金额"`
	Value    int64  `gorm:"not null;comment:折扣值;百分比时为百分点, 固定金额时单位为分"`
	MinTotal int64  `gorm:"not null;default:0;comment:最低消费金额, 单位为分"`
	Active   bool   `gorm:"not null;default:false;index:idx_active;comment:是否启用"`
	StartAt  int64  `gorm:"comment:生效时间, 0表示不限"`
	EndAt    int64  `gorm:"comment:失效时间, 0表示不限"`
	Ctime    int64
	Utime    int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Promotion{}, &DiscountCode{})
}
