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

import (
	"github.com/ecodeclub/ginx"
)

// MockLogin 模拟的，用来开发测试环境省略登录过程
func (h *Handler) MockLogin(ctx *ginx.Context) (ginx.Result, error) {
	const mockEmail = "dev@safetap.local"
	user, err := h.userSvc.FindOrCreateByEmail(ctx.Request.Context(), mockEmail)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.buildSession(ctx, user)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: newProfile(user),
	}, nil
}
