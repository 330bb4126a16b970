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

package domain

import "time"

type Status uint8

const (
	StatusPending  Status = 1
	StatusAccepted Status = 2
	StatusRevoked  Status = 3
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// Invitation 后台管理员邀请, 邀请码线下发给受邀人,
// 受邀人登录后凭码接受, 角色升级为管理员
type Invitation struct {
	ID        int64
	Code      string
	InviterID int64
	Email     string
	Status    Status
	ExpiresAt int64
	Ctime     int64
	Utime     int64
}

func (i Invitation) IsExpired(now time.Time) bool {
	return i.ExpiresAt > 0 && i.ExpiresAt < now.UnixMilli()
}
