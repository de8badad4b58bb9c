package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pankajredekar/productapi/internal/product"
	"github.com/pankajredekar/productapi/internal/store"
)

// Products is the product service as seen by the HTTP layer.
type Products interface {
	Create(ctx context.Context, params product.Params) (*product.Product, error)
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id int64) (*product.Product, error)
	Update(ctx context.Context, id int64, params product.Params) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productHandler struct {
	service Products
	log     *slog.Logger
}

func (h *productHandler) register(router gin.IRouter) {
	router.POST("/products", h.createProduct)
	router.GET("/products", h.listProducts)
	router.GET("/products/:id", h.getProduct)
	router.PUT("/products/:id", h.updateProduct)
	router.DELETE("/products/:id", h.deleteProduct)
}

func (h *productHandler) createProduct(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	res, err := h.service.Create(c.Request.Context(), req.params())
	if err != nil {
		h.fail(c, "create product", err)
		return
	}

	c.JSON(http.StatusCreated, toResp(*res))
}

func (h *productHandler) listProducts(c *gin.Context) {
	res, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "query products", err)
		return
	}

	c.JSON(http.StatusOK, toRespList(res))
}

func (h *productHandler) getProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "query product", err)
		return
	}

	c.JSON(http.StatusOK, toResp(*res))
}

func (h *productHandler) updateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, req.params())
	if err != nil {
		h.fail(c, "update product", err)
		return
	}

	c.JSON(http.StatusOK, toResp(*res))
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete product", err)
		return
	}

	c.JSON(http.StatusOK, messageResp{Message: "Product deleted successfully"})
}

func (h *productHandler) bind(c *gin.Context) (productReq, bool) {
	var req productReq
	if err := c.ShouldBindWith(&req, strictJSON{}); err != nil {
		msg := "Invalid request body"
		if fields := missingFields(err); len(fields) > 0 {
			msg += ": missing " + strings.Join(fields, ", ")
		}
		requestLogger(c, h.log).Debug("rejected request body", "error", err)
		c.JSON(http.StatusBadRequest, errorResp{Error: msg, Code: CodeInvalidRequest})
		return req, false
	}
	return req, true
}

// productID parses the :id segment. Anything that is not a non-negative
// integer cannot name a product.
func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		notFound(c)
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResp{Error: "Product not found", Code: CodeNotFound})
}

// fail maps a service error to a response. Infrastructure details are logged
// and replaced by a generic message.
func (h *productHandler) fail(c *gin.Context, action string, err error) {
	if errors.Is(err, product.ErrNotFound) {
		notFound(c)
		return
	}
	if errors.Is(err, product.ErrPriceOutOfRange) {
		requestLogger(c, h.log).Debug("rejected request body", "error", err)
		c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid request body: price out of range", Code: CodeInvalidRequest})
		return
	}

	log := requestLogger(c, h.log)
	if errors.Is(err, store.ErrConnection) {
		log.Error("database connection failed", store.ErrorAttrs(err)...)
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Database connection failed", Code: CodeDatabaseUnavailable})
		return
	}

	log.Error("failed to "+action, store.ErrorAttrs(err)...)
	c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to " + action, Code: CodeDatabaseError})
}
