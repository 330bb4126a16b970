package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidEmailResult = ginx.Result{
		Code: errs.InvalidEmail.Code,
		Msg:  errs.InvalidEmail.Msg,
	}
)
