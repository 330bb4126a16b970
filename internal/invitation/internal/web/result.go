package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/invitation/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invitationNotFoundResult = ginx.Result{
		Code: errs.InvitationNotFound.Code,
		Msg:  errs.InvitationNotFound.Msg,
	}
	invitationNotPendingResult = ginx.Result{
		Code: errs.InvitationNotPending.Code,
		Msg:  errs.InvitationNotPending.Msg,
	}
	invitationExpiredResult = ginx.Result{
		Code: errs.InvitationExpired.Code,
		Msg:  errs.InvitationExpired.Msg,
	}
	invitationEmailInvalidResult = ginx.Result{
		Code: errs.InvitationEmailInvalid.Code,
		Msg:  errs.InvitationEmailInvalid.Msg,
	}
	emailMismatchResult = ginx.Result{
		Code: errs.EmailMismatch.Code,
		Msg:  errs.EmailMismatch.Msg,
	}
)
