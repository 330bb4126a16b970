package errs

var (
	SystemError     = ErrorCode{Code: 550001, Msg: "系统错误"}
	ProfileNotFound = ErrorCode{Code: 550002, Msg: "急救资料不存在"}
	InvalidProfile  = ErrorCode{Code: 550003, Msg: "急救资料信息非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
