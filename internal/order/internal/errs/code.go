package errs

var (
	SystemError              = ErrorCode{Code: 520001, Msg: "系统错误"}
	OrderNotFound            = ErrorCode{Code: 520002, Msg: "订单不存在"}
	InvalidStatusTransition  = ErrorCode{Code: 520003, Msg: "订单状态流转不合法"}
	OrderStatusConflict      = ErrorCode{Code: 520004, Msg: "订单状态已被并发修改"}
	InvalidOverrideStatus    = ErrorCode{Code: 520005, Msg: "回退修正的目标状态不合法"}
	EmptyOrderItems          = ErrorCode{Code: 520006, Msg: "订单不包含任何商品"}
	OrderCancellationIllegal = ErrorCode{Code: 520007, Msg: "当前状态下订单不允许取消"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
