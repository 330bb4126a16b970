package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/sticker/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	stickerNotFoundResult = ginx.Result{
		Code: errs.StickerNotFound.Code,
		Msg:  errs.StickerNotFound.Msg,
	}
	stickerNotActiveResult = ginx.Result{
		Code: errs.StickerNotActive.Code,
		Msg:  errs.StickerNotActive.Msg,
	}
	stickerNotLinkedResult = ginx.Result{
		Code: errs.StickerNotLinked.Code,
		Msg:  errs.StickerNotLinked.Msg,
	}
	profileNotOwnedResult = ginx.Result{
		Code: errs.ProfileNotOwned.Code,
		Msg:  errs.ProfileNotOwned.Msg,
	}
)
