package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/payment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	transferNotAllowedResult = ginx.Result{
		Code: errs.TransferNotAllowed.Code,
		Msg:  errs.TransferNotAllowed.Msg,
	}
)
