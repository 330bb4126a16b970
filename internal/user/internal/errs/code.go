package errs

var (
	SystemError  = ErrorCode{Code: 560001, Msg: "系统错误"}
	InvalidEmail = ErrorCode{Code: 560002, Msg: "邮箱格式非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
