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

// Profile 急救资料, 扫码后展示给救助者
type Profile struct {
	ID          int64
	OwnerID     int64
	Name        string
	BloodType   string
	Allergies   string
	Medications string
	Conditions  string
	Notes       string
	Contacts    []Contact
	Ctime       int64
	Utime       int64
}

// Contact 紧急联系人
type Contact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

// PublicView 扫码时对外展示的子集, 不暴露内部ID与归属信息
type PublicView struct {
	Name        string
	BloodType   string
	Allergies   string
	Medications string
	Conditions  string
	Notes       string
	Contacts    []Contact
}

func (p Profile) ToPublicView() PublicView {
	return PublicView{
		Name:        p.Name,
		BloodType:   p.BloodType,
		Allergies:   p.Allergies,
		Medications: p.Medications,
		Conditions:  p.Conditions,
		Notes:       p.Notes,
		Contacts:    p.Contacts,
	}
}
