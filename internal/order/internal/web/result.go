package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidStatusTransitionResult = ginx.Result{
		Code: errs.InvalidStatusTransition.Code,
		Msg:  errs.InvalidStatusTransition.Msg,
	}
	orderStatusConflictResult = ginx.Result{
		Code: errs.OrderStatusConflict.Code,
		Msg:  errs.OrderStatusConflict.Msg,
	}
	invalidOverrideStatusResult = ginx.Result{
		Code: errs.InvalidOverrideStatus.Code,
		Msg:  errs.InvalidOverrideStatus.Msg,
	}
	emptyOrderItemsResult = ginx.Result{
		Code: errs.EmptyOrderItems.Code,
		Msg:  errs.EmptyOrderItems.Msg,
	}
	cancellationIllegalResult = ginx.Result{
		Code: errs.OrderCancellationIllegal.Code,
		Msg:  errs.OrderCancellationIllegal.Msg,
	}
)
