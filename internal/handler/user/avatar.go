package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "agora/internal/pkg/http"
	"agora/internal/service"
)

// UploadAvatar 上传头像
// @Summary      上传头像
// @Description  multipart 表单，字段名 avatar，支持 jpeg/png/webp，上限 2MiB
// @Tags         用户
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "头像文件"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  ErrorResponse
// @Failure      413     {object}  ErrorResponse
// @Router       /api/v1/users/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Missing avatar file",
			Detail:  err.Error(),
		})
		return
	}

	if fileHeader.Size > service.AvatarMaxSize {
		respondError(c, service.ErrAvatarTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Failed to read avatar file",
			Detail:  err.Error(),
		})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.userService.UploadAvatar(c.Request.Context(), current.ID,
		file, fileHeader.Size, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Avatar uploaded",
		"data":    gin.H{"avatar": url},
	})
}
