package errs

var (
	SystemError        = ErrorCode{Code: 530001, Msg: "系统错误"}
	PaymentNotFound    = ErrorCode{Code: 530002, Msg: "支付记录不存在"}
	TransferNotAllowed = ErrorCode{Code: 530003, Msg: "当前支付状态不允许标记转账"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
