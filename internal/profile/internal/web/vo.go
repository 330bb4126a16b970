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

// SaveProfileReq 保存急救资料, id 为 0 表示创建
type SaveProfileReq struct {
	Profile Profile `json:"profile"`
}

type SaveProfileResp struct {
	ID int64 `json:"id"`
}

type ProfileReq struct {
	ID int64 `json:"id"`
}

type ProfileResp struct {
	Profile Profile `json:"profile"`
}

type ListProfilesResp struct {
	Profiles []Profile `json:"profiles"`
}

type Profile struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	BloodType   string    `json:"bloodType"`
	Allergies   string    `json:"allergies"`
	Medications string    `json:"medications"`
	Conditions  string    `json:"conditions"`
	Notes       string    `json:"notes"`
	Contacts    []Contact `json:"contacts"`
	Utime       int64     `json:"utime,omitempty"`
}

type Contact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}
