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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/safetap/internal/profile/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

// ProfileCache 扫码路径上的热点数据, 更新资料时直接删除
type ProfileCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.Profile, error)
	Set(ctx context.Context, p domain.Profile) error
}

func NewProfileECache(c ecache.Cache) ProfileCache {
	return &ProfileECache{
		cache: &ecache.NamespaceCache{
			Namespace: "profile:",
			C:         c,
		},
		expiration: time.Minute * 5,
	}
}

type ProfileECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func (cache *ProfileECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return err
}

func (cache *ProfileECache) Get(ctx context.Context, id int64) (domain.Profile, error) {
	var p domain.Profile
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&p)
	return p, err
}

func (cache *ProfileECache) Set(ctx context.Context, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(p.ID), data, cache.expiration)
}

func (cache *ProfileECache) key(id int64) string {
	return fmt.Sprintf("safetap:profile:info:%d", id)
}
