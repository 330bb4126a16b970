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

package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/safetap/internal/pkg/mqx"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go StatusChangedEventProducer
type StatusChangedEventProducer interface {
	Produce(ctx context.Context, evt StatusChangedEvent) error
}

func NewStatusChangedEventProducer(q mq.MQ) (StatusChangedEventProducer, error) {
	p, err := mqx.NewGeneralProducer[StatusChangedEvent](q, StatusChangedEventName)
	if err != nil {
		return nil, err
	}
	return &statusChangedEventProducer{producer: p}, nil
}

type statusChangedEventProducer struct {
	producer *mqx.GeneralProducer[StatusChangedEvent]
}

func (s *statusChangedEventProducer) Produce(ctx context.Context, evt StatusChangedEvent) error {
	return s.producer.ProduceWithKey(ctx, evt.OrderSN, evt)
}
