package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/service"
	"malama_health_backend/internal/util"
)

type ForumController struct {
	ForumService *service.ForumService
}

func NewForumController(forumService *service.ForumService) *ForumController {
	return &ForumController{ForumService: forumService}
}

// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	AuthorID   string   `json:"authorId" binding:"required"`
	AuthorName string   `json:"authorName" binding:"required"`
	Tags       []string `json:"tags"`
}

// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	AuthorID   string `json:"authorId" binding:"required"`
	AuthorName string `json:"authorName" binding:"required"`
}

// GetPosts godoc
// @Summary List forum posts
// @Tags forum
// @Produce json
// @Success 200 {array} model.ForumPost
// @Router /forum [get]
func (c *ForumController) GetPosts(ctx *gin.Context) {
	posts, err := c.ForumService.GetPosts()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a post and count the view
// @Tags forum
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.ForumPost
// @Failure 404 {object} util.ErrorResponse
// @Router /forum/{id} [get]
func (c *ForumController) GetPost(ctx *gin.Context) {
	post, err := c.ForumService.ViewPost(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// GetPostsByCategory godoc
// @Summary List posts in a category
// @Tags forum
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} model.ForumPost
// @Router /forum/category/{category} [get]
func (c *ForumController) GetPostsByCategory(ctx *gin.Context) {
	posts, err := c.ForumService.GetPostsByCategory(ctx.Param("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Param body body CreatePostRequest true "Post payload"
// @Success 201 {object} model.ForumPost
// @Failure 400 {object} util.ErrorResponse
// @Router /forum [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	var req CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	post, err := c.ForumService.CreatePost(model.ForumPost{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
		Tags:       req.Tags,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Merge-patch a post
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.ForumPost
// @Failure 404 {object} util.ErrorResponse
// @Router /forum/{id} [put]
func (c *ForumController) UpdatePost(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	post, err := c.ForumService.UpdatePost(ctx.Param("id"), patch)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Tags forum
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} util.ErrorResponse
// @Router /forum/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	if err := c.ForumService.DeletePost(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// AddComment godoc
// @Summary Comment on a post
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param body body CreateCommentRequest true "Comment payload"
// @Success 201 {object} model.ForumComment
// @Failure 404 {object} util.ErrorResponse
// @Router /forum/{id}/comments [post]
func (c *ForumController) AddComment(ctx *gin.Context) {
	var req CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	comment, err := c.ForumService.AddComment(ctx.Param("id"), model.ForumComment{
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// LikePost godoc
// @Summary Like a post
// @Description Adds one like per call. The server applies no dedup; the
// @Description client is expected to disable repeat likes in the UI.
// @Tags forum
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.ForumPost
// @Failure 404 {object} util.ErrorResponse
// @Router /forum/{id}/like [post]
func (c *ForumController) LikePost(ctx *gin.Context) {
	post, err := c.ForumService.LikePost(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, post)
}
