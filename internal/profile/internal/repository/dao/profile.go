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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/safetap/internal/profile/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrProfileNotFound = gorm.ErrRecordNotFound

type ProfileDAO interface {
	Insert(ctx context.Context, p Profile) (int64, error)
	// Update 只更新归属于 ownerID 的资料, 防止越权
	Update(ctx context.Context, p Profile) error
	FindByID(ctx context.Context, id int64) (Profile, error)
	FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (Profile, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]Profile, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

func NewProfileGORMDAO(db *egorm.Component) ProfileDAO {
	return &gormProfileDAO{db: db}
}

type gormProfileDAO struct {
	db *egorm.Component
}

func (g *gormProfileDAO) Insert(ctx context.Context, p Profile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *gormProfileDAO) Update(ctx context.Context, p Profile) error {
	return g.db.WithContext(ctx).Model(&Profile{}).
		Where("id = ? AND owner_id = ?", p.Id, p.OwnerId).
		Updates(map[string]any{
			"Name":        p.Name,
			"BloodType":   p.BloodType,
			"Allergies":   p.Allergies,
			"Medications": p.Medications,
			"Conditions":  p.Conditions,
			"Notes":       p.Notes,
			"Contacts":    p.Contacts,
			"Utime":       time.Now().UnixMilli(),
		}).Error
}

func (g *gormProfileDAO) FindByID(ctx context.Context, id int64) (Profile, error) {
	var res Profile
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *gormProfileDAO) FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (Profile, error) {
	var res Profile
	err := g.db.WithContext(ctx).First(&res, "id = ? AND owner_id = ?", id, ownerID).Error
	return res, err
}

func (g *gormProfileDAO) FindByOwnerID(ctx context.Context, ownerID int64) ([]Profile, error) {
	var res []Profile
	err := g.db.WithContext(ctx).Order("id DESC").Find(&res, "owner_id = ?", ownerID).Error
	return res, err
}

func (g *gormProfileDAO) Delete(ctx context.Context, id, ownerID int64) error {
	return g.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Profile{}).Error
}

type Profile struct {
	Id          int64                             `gorm:"primaryKey;autoIncrement;comment:急救资料自增ID"`
	OwnerId     int64                             `gorm:"not null;index:idx_owner_id;comment:归属用户ID"`
	Name        string                            `gorm:"type:varchar(255);not null;comment:展示姓名"`
	BloodType   string                            `gorm:"type:varchar(16);comment:血型"`
	Allergies   string                            `gorm:"type:text;comment:过敏源"`
	Medications string                            `gorm:"type:text;comment:长期用药"`
	Conditions  string                            `gorm:"type:text;comment:基础疾病"`
	Notes       string                            `gorm:"type:text;comment:补充说明"`
	Contacts    sqlx.JsonColumn[[]domain.Contact] `gorm:"type:text;comment:紧急联系人"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Profile{})
}
