package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/user/internal/domain"
	"github.com/ecodeclub/safetap/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", ginx.B[LoginByEmailReq](h.LoginByEmail))
	// 本地开发和测试环境跳过认证直接登录
	if econf.GetBool("user.enableMockLogin") {
		users.POST("/mock_login", ginx.W(h.MockLogin))
	}
}

// LoginByEmail 身份认证在会话层之前完成, 这里按邮箱查找或初始化账号并建立会话
func (h *Handler) LoginByEmail(ctx *ginx.Context, req LoginByEmailReq) (ginx.Result, error) {
	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") {
		return invalidEmailResult, fmt.Errorf("邮箱格式非法: %q", email)
	}
	user, err := h.userSvc.FindOrCreateByEmail(ctx.Request.Context(), email)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.buildSession(ctx, user)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(user),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) buildSession(ctx *ginx.Context, user domain.User) error {
	_, err := session.NewSessionBuilder(ctx, user.Id).
		// 角色写进 claims, 后台接口的权限校验直接读会话
		SetJwtData(map[string]string{
			"role": strconv.Itoa(int(user.Role)),
		}).Build()
	return err
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		Email:    u.Email,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Role:     u.Role,
	}
}
