package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	trace         *telemetry.Trace
	blogService *service.BlogService
}

func NewBlogHandler(trace *telemetry.Trace, blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{trace: trace, blogService: blogService}
}

// Create 建立文章
// @Summary 建立文章，可關聯店內商品
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateBlogDto true "文章內容"
// @Success 201 {object} model.BlogPost
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateBlogDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	post, err := h.blogService.CreateBlog(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, post)
}

// List 文章列表
// @Summary 文章列表
// @Tags Blog
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.BlogPost
// @Router /api/stores/{storeId}/blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	posts, err := h.blogService.ListBlogs(ctx, store.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, posts)
}

// Get 取得文章
// @Summary 取得單一文章
// @Tags Blog
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param postId path string true "Blog Post ID"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/blogs/{postId} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	postID, cause, respErr := validate.ParseObjectID(c, "postId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	post, err := h.blogService.GetBlog(ctx, store, postID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, post)
}

// Update 更新文章
// @Summary 更新文章
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param postId path string true "Blog Post ID"
// @Param body body dto.UpdateBlogDto true "文章內容"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/blogs/{postId} [patch]
func (h *BlogHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	postID, cause, respErr := validate.ParseObjectID(c, "postId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateBlogDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.blogService.UpdateBlog(ctx, store, postID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "blog post updated"})
}

// Delete 刪除文章
// @Summary 刪除文章
// @Tags Blog
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param postId path string true "Blog Post ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/blogs/{postId} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	postID, cause, respErr := validate.ParseObjectID(c, "postId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.blogService.DeleteBlog(ctx, store, postID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "blog post deleted"})
}
