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
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/pkg/errors"
)

var ErrStickerNotFound = errors.New("贴纸没找到")

// StickerCache 扫码按 slug 查询是全站最热的读路径, 短TTL兜底
type StickerCache interface {
	DeleteBySlug(ctx context.Context, slug string) error
	GetBySlug(ctx context.Context, slug string) (domain.Sticker, error)
	Set(ctx context.Context, s domain.Sticker) error
}

func NewStickerECache(c ecache.Cache) StickerCache {
	return &StickerECache{
		cache: &ecache.NamespaceCache{
			Namespace: "sticker:",
			C:         c,
		},
		expiration: time.Minute,
	}
}

type StickerECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func (cache *StickerECache) DeleteBySlug(ctx context.Context, slug string) error {
	_, err := cache.cache.Delete(ctx, cache.key(slug))
	return err
}

func (cache *StickerECache) GetBySlug(ctx context.Context, slug string) (domain.Sticker, error) {
	val := cache.cache.Get(ctx, cache.key(slug))
	if val.KeyNotFound() {
		return domain.Sticker{}, ErrStickerNotFound
	}
	if val.Err != nil {
		return domain.Sticker{}, val.Err
	}
	var s domain.Sticker
	err := json.Unmarshal([]byte(val.Val.(string)), &s)
	return s, errors.Wrap(err, "反序列化贴纸失败")
}

func (cache *StickerECache) Set(ctx context.Context, s domain.Sticker) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "序列化贴纸失败")
	}
	return cache.cache.Set(ctx, cache.key(s.Slug), string(data), cache.expiration)
}

func (cache *StickerECache) key(slug string) string {
	return fmt.Sprintf("safetap:sticker:slug:%s", slug)
}
