package errs

var (
	SystemError            = ErrorCode{Code: 570001, Msg: "系统错误"}
	InvitationNotFound     = ErrorCode{Code: 570002, Msg: "邀请不存在"}
	InvitationNotPending   = ErrorCode{Code: 570003, Msg: "邀请已被接受或撤销"}
	InvitationExpired      = ErrorCode{Code: 570004, Msg: "邀请已过期"}
	InvitationEmailInvalid = ErrorCode{Code: 570005, Msg: "受邀邮箱非法"}
	EmailMismatch          = ErrorCode{Code: 570006, Msg: "邮箱与受邀邮箱不一致"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
