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

package web

type InviteReq struct {
	Email string `json:"email"`
}

type InviteResp struct {
	// Code 线下交给受邀人
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expiresAt"`
}

type AcceptInvitationReq struct {
	Code string `json:"code"`
}

type RevokeInvitationReq struct {
	Code string `json:"code"`
}

type ListInvitationsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListInvitationsResp struct {
	Total       int64        `json:"total,omitempty"`
	Invitations []Invitation `json:"invitations,omitempty"`
}

type Invitation struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	InviterID int64  `json:"inviterID"`
	Email     string `json:"email"`
	Status    uint8  `json:"status"`
	ExpiresAt int64  `json:"expiresAt"`
	Ctime     int64  `json:"ctime"`
}
