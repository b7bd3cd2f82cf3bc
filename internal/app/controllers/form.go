package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
)

// pathID parses the :id path parameter and answers 400 when it is not a
// positive number.
func pathID(ctx *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Nieprawidłowy identyfikator").
			WithField("id").
			WithDetails(what + " ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// formValue returns nil when the field was not sent at all
func formValue(ctx *gin.Context, key string) *string {
	v, ok := ctx.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

// formBool reads a boolean form field; anything but a true-ish value is false
func formBool(ctx *gin.Context, key string) *bool {
	v, ok := ctx.GetPostForm(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		b = false
	}
	return &b
}

// formFiles collects uploads sent as "files", "files[]" or a single "file"
func formFiles(ctx *gin.Context) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var out []*multipart.FileHeader
	for _, key := range []string{"files", "files[]", "file"} {
		out = append(out, form.File[key]...)
	}
	return out
}

// formFile returns the single "file" upload, or nil
func formFile(ctx *gin.Context) *multipart.FileHeader {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return nil
	}
	return fh
}
