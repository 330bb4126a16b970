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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound = gorm.ErrRecordNotFound
	// ErrInvitationNotPending 邀请已经被接受或撤销, 状态不允许再变更
	ErrInvitationNotPending = errors.New("邀请不处于待接受状态")
)

const statusPending uint8 = 1

type InvitationDAO interface {
	Insert(ctx context.Context, i Invitation) (int64, error)
	FindByCode(ctx context.Context, code string) (Invitation, error)
	List(ctx context.Context, offset, limit int) ([]Invitation, error)
	Count(ctx context.Context) (int64, error)
	// UpdateStatus 只允许从待接受状态迁出, 并发下靠行锁语义兜底
	UpdateStatus(ctx context.Context, code string, status uint8) error
}

type gormInvitationDAO struct {
	db *egorm.Component
}

func NewInvitationGORMDAO(db *egorm.Component) InvitationDAO {
	return &gormInvitationDAO{db: db}
}

func (g *gormInvitationDAO) Insert(ctx context.Context, i Invitation) (int64, error) {
	now := time.Now().UnixMilli()
	i.Ctime, i.Utime = now, now
	err := g.db.WithContext(ctx).Create(&i).Error
	return i.Id, err
}

func (g *gormInvitationDAO) FindByCode(ctx context.Context, code string) (Invitation, error) {
	var res Invitation
	err := g.db.WithContext(ctx).First(&res, "code = ?", code).Error
	return res, err
}

func (g *gormInvitationDAO) List(ctx context.Context, offset, limit int) ([]Invitation, error) {
	var res []Invitation
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *gormInvitationDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Invitation{}).Count(&count).Error
	return count, err
}

func (g *gormInvitationDAO) UpdateStatus(ctx context.Context, code string, status uint8) error {
	res := g.db.WithContext(ctx).Model(&Invitation{}).
		Where("code = ? AND status = ?", code, statusPending).
		Updates(map[string]any{
			"Status": status,
			"Utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrInvitationNotPending, code)
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.WithContext(context.Background()).AutoMigrate(&Invitation{})
}

type Invitation struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:邀请自增ID"`
	Code      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_invitation_code;comment:邀请码"`
	InviterId int64  `gorm:"not null;index:idx_inviter_id;comment:邀请者ID"`
	Email     string `gorm:"type:varchar(256);not null;comment:受邀人邮箱"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=待接受 2=已接受 3=已撤销"`
	ExpiresAt int64  `gorm:"not null;comment:过期时间, 毫秒时间戳"`
	Ctime     int64
	Utime     int64
}
