package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/promotion/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCartItemsResult = ginx.Result{
		Code: errs.InvalidCartItems.Code,
		Msg:  errs.InvalidCartItems.Msg,
	}
	promotionNotFoundResult = ginx.Result{
		Code: errs.PromotionNotFound.Code,
		Msg:  errs.PromotionNotFound.Msg,
	}
)
