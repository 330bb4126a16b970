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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending Status = iota + 1
	StatusVerified
	StatusPaid
	StatusRejected
	StatusCancelled
	StatusTransferred
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusVerified:
		return "VERIFIED"
	case StatusPaid:
		return "PAID"
	case StatusRejected:
		return "REJECTED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusTransferred:
		return "TRANSFERRED"
	default:
		return "UNKNOWN"
	}
}

type Payment struct {
	ID          int64
	SN          string
	OrderID     int64
	OrderSN     string
	PayerID     int64
	TotalAmount int64
	Status      Status
	PaidAt      int64
	Ctime       int64
	Utime       int64
}
