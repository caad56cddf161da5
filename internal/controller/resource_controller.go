package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/service"
	"malama_health_backend/internal/util"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// swagger:model CreateResourceRequest
type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	URL         string   `json:"url"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// GetResources godoc
// @Summary List resources
// @Description Seeds placeholder resources on the first read of an empty store.
// @Tags resources
// @Produce json
// @Success 200 {array} model.Resource
// @Router /resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	resources, err := c.ResourceService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resources)
}

// GetResource godoc
// @Summary Get a resource by id
// @Tags resources
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} model.Resource
// @Failure 404 {object} util.ErrorResponse
// @Router /resources/{id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	resource, err := c.ResourceService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, resource)
}

// GetResourcesByCategory godoc
// @Summary List resources in a category
// @Tags resources
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} model.Resource
// @Router /resources/category/{category} [get]
func (c *ResourceController) GetResourcesByCategory(ctx *gin.Context) {
	resources, err := c.ResourceService.GetByCategory(ctx.Param("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resources)
}

// CreateResource godoc
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param body body CreateResourceRequest true "Resource payload"
// @Success 201 {object} model.Resource
// @Failure 400 {object} util.ErrorResponse
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	resource, err := c.ResourceService.Create(model.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		URL:         req.URL,
		Phone:       req.Phone,
		Address:     req.Address,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resource)
}

// UpdateResource godoc
// @Summary Merge-patch a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} model.Resource
// @Failure 404 {object} util.ErrorResponse
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	resource, err := c.ResourceService.Update(ctx.Param("id"), patch)
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} util.ErrorResponse
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	if err := c.ResourceService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully"})
}
