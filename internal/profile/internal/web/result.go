package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/profile/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	profileNotFoundResult = ginx.Result{
		Code: errs.ProfileNotFound.Code,
		Msg:  errs.ProfileNotFound.Msg,
	}
	invalidProfileResult = ginx.Result{
		Code: errs.InvalidProfile.Code,
		Msg:  errs.InvalidProfile.Msg,
	}
)
