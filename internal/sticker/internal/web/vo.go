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

type LinkProfileReq struct {
	StickerID int64 `json:"stickerID"`
	ProfileID int64 `json:"profileID"`
}

type ListStickersResp struct {
	Stickers []Sticker `json:"stickers"`
}

type Sticker struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	OrderSN   string `json:"orderSN"`
	ProfileID int64  `json:"profileID"`
	Status    uint8  `json:"status"`
	Utime     int64  `json:"utime,omitempty"`
}

// ScanResp 扫码展示的资料, 只含急救必需字段
type ScanResp struct {
	Name        string        `json:"name"`
	BloodType   string        `json:"bloodType"`
	Allergies   string        `json:"allergies"`
	Medications string        `json:"medications"`
	Conditions  string        `json:"conditions"`
	Notes       string        `json:"notes"`
	Contacts    []ScanContact `json:"contacts"`
}

type ScanContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}
