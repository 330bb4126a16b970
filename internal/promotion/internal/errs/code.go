package errs

var (
	SystemError       = ErrorCode{Code: 510001, Msg: "系统错误"}
	InvalidCartItems  = ErrorCode{Code: 510002, Msg: "购物车商品信息非法"}
	PromotionNotFound = ErrorCode{Code: 510003, Msg: "活动不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
