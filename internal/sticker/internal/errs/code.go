package errs

var (
	SystemError      = ErrorCode{Code: 540001, Msg: "系统错误"}
	StickerNotFound  = ErrorCode{Code: 540002, Msg: "贴纸不存在"}
	StickerNotActive = ErrorCode{Code: 540003, Msg: "贴纸未激活"}
	StickerNotLinked = ErrorCode{Code: 540004, Msg: "贴纸尚未关联急救资料"}
	ProfileNotOwned  = ErrorCode{Code: 540005, Msg: "急救资料不属于当前用户"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
