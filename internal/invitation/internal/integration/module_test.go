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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/invitation"
	"github.com/ecodeclub/safetap/internal/invitation/internal/errs"
	"github.com/ecodeclub/safetap/internal/invitation/internal/web"
	"github.com/ecodeclub/safetap/internal/test"
	testioc "github.com/ecodeclub/safetap/internal/test/ioc"
	"github.com/ecodeclub/safetap/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// 超级管理员的 UID, 测试里不需要真实存在
const inviterUID = int64(20001)

func TestInvitationModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db      *egorm.Component
	server  *egin.Component
	userSvc user.UserService

	// 当前请求以谁的身份发出
	currentUID int64
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	ec := testioc.InitCache()
	userModule, err := user.InitModule(s.db, ec, q)
	require.NoError(s.T(), err)
	s.userSvc = userModule.Svc
	module, err := invitation.InitModule(s.db, userModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  s.currentUID,
			Data: map[string]string{"role": "3"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine, func(_ *gin.Context) {})
	s.server = server
}

func (s *ModuleTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `invitations`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `users`").Error)
}

func (s *ModuleTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `invitations`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `users`").Error)
}

func (s *ModuleTestSuite) invite(email string) web.InviteResp {
	s.T().Helper()
	s.currentUID = inviterUID
	req, err := http.NewRequest(http.MethodPost,
		"/invitation/create", iox.NewJSONReader(web.InviteReq{Email: email}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.InviteResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *ModuleTestSuite) accept(uid int64, code string) test.Result[any] {
	s.T().Helper()
	s.currentUID = uid
	req, err := http.NewRequest(http.MethodPost,
		"/invitation/accept", iox.NewJSONReader(web.AcceptInvitationReq{Code: code}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *ModuleTestSuite) TestInviteThenAccept() {
	t := s.T()
	invitee, err := s.userSvc.FindOrCreateByEmail(context.Background(), "invitee@safetap.cn")
	require.NoError(t, err)
	require.Equal(t, user.RoleUser, invitee.Role)

	resp := s.invite("invitee@safetap.cn")
	assert.NotZero(t, resp.Code)
	assert.Greater(t, resp.ExpiresAt, time.Now().UnixMilli())

	res := s.accept(invitee.Id, resp.Code)
	assert.Zero(t, res.Code)

	upgraded, err := s.userSvc.Profile(context.Background(), invitee.Id)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, upgraded.Role)

	// 已接受的邀请不能再接受一次
	res = s.accept(invitee.Id, resp.Code)
	assert.Equal(t, errs.InvitationNotPending.Code, res.Code)
}

func (s *ModuleTestSuite) TestAcceptWithWrongEmail() {
	t := s.T()
	outsider, err := s.userSvc.FindOrCreateByEmail(context.Background(), "outsider@safetap.cn")
	require.NoError(t, err)

	resp := s.invite("invitee@safetap.cn")
	res := s.accept(outsider.Id, resp.Code)
	assert.Equal(t, errs.EmailMismatch.Code, res.Code)

	// 邀请保持待接受, 正主依然可以接受
	invitee, err := s.userSvc.FindOrCreateByEmail(context.Background(), "invitee@safetap.cn")
	require.NoError(t, err)
	res = s.accept(invitee.Id, resp.Code)
	assert.Zero(t, res.Code)
}

func (s *ModuleTestSuite) TestAcceptUnknownCode() {
	t := s.T()
	invitee, err := s.userSvc.FindOrCreateByEmail(context.Background(), "invitee@safetap.cn")
	require.NoError(t, err)

	res := s.accept(invitee.Id, "no-such-code")
	assert.Equal(t, errs.InvitationNotFound.Code, res.Code)
}
