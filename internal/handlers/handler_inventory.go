package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// inventoryHandler handles the catalogue, stock location and stock move
// endpoints.
type inventoryHandler struct {
	inventoryService portssvc.InventoryService
}

func newInventoryHandler(is portssvc.InventoryService) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers product, article, stock and move routes.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventoryService) {
	h := newInventoryHandler(inventoryService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
	}

	articles := rg.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.listArticles)
		articles.GET("/:articleID", h.getArticle)
	}

	stocks := rg.Group("/stocks")
	{
		stocks.POST("", h.createLocation)
		stocks.GET("", h.listLocations)
		stocks.GET("/:locationID", h.getLocation)
		stocks.GET("/:locationID/inventory", h.getInventory)
		stocks.GET("/:locationID/articles/:articleID/moves", h.getArticleHistory)
	}

	moves := rg.Group("/stock-moves")
	{
		moves.POST("", h.postMove)
		moves.GET("", h.listMoves)
		moves.GET("/:moveID", h.getMove)
	}
}

// createProduct godoc
// @Summary Create a product
// @Description Creates a catalogue product identified by a unique code
// @Tags inventory
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Product code already in use"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Security BearerAuth
// @Router /products [post]
func (h *inventoryHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	product, err := h.inventoryService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags inventory
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *inventoryHandler) getProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}
	product, err := h.inventoryService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *inventoryHandler) listProducts(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	products, err := h.inventoryService.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// updateProduct godoc
// @Summary Update a product
// @Description Updates a product's label and description; the code is immutable
// @Tags inventory
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *inventoryHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// createArticle godoc
// @Summary Create an article
// @Description Creates a stock-keeping unit of a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /articles [post]
func (h *inventoryHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createArticle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	article, err := h.inventoryService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create article")
		return
	}
	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// getArticle godoc
// @Summary Get an article by ID
// @Tags inventory
// @Produce json
// @Param articleID path int true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Security BearerAuth
// @Router /articles/{articleID} [get]
func (h *inventoryHandler) getArticle(c *gin.Context) {
	articleID, ok := parseIDParam(c, "articleID")
	if !ok {
		return
	}
	article, err := h.inventoryService.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List articles
// @Tags inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.ArticleResponse
// @Security BearerAuth
// @Router /articles [get]
func (h *inventoryHandler) listArticles(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	articles, err := h.inventoryService.ListArticles(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list articles")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}

// createLocation godoc
// @Summary Create a stock location
// @Tags inventory
// @Accept json
// @Produce json
// @Param location body dto.CreateStockLocationRequest true "Location details"
// @Success 201 {object} dto.StockLocationResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 409 {object} map[string]string "Location label already in use"
// @Security BearerAuth
// @Router /stocks [post]
func (h *inventoryHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	location, err := h.inventoryService.CreateLocation(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create stock location")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockLocationResponse(location))
}

// getLocation godoc
// @Summary Get a stock location by ID
// @Tags inventory
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {object} dto.StockLocationResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Security BearerAuth
// @Router /stocks/{locationID} [get]
func (h *inventoryHandler) getLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c, "locationID")
	if !ok {
		return
	}
	location, err := h.inventoryService.GetLocationByID(c.Request.Context(), locationID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve stock location")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockLocationResponse(location))
}

// listLocations godoc
// @Summary List stock locations
// @Tags inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.StockLocationResponse
// @Security BearerAuth
// @Router /stocks [get]
func (h *inventoryHandler) listLocations(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	locations, err := h.inventoryService.ListLocations(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list stock locations")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockLocationResponses(locations))
}

// getInventory godoc
// @Summary Get a location's inventory
// @Description Derives on-hand quantities per article from the move journal
// @Tags inventory
// @Produce json
// @Param locationID path int true "Location ID"
// @Success 200 {array} dto.InventoryRowResponse
// @Failure 404 {object} map[string]string "Location not found"
// @Security BearerAuth
// @Router /stocks/{locationID}/inventory [get]
func (h *inventoryHandler) getInventory(c *gin.Context) {
	locationID, ok := parseIDParam(c, "locationID")
	if !ok {
		return
	}
	rows, err := h.inventoryService.LocationInventory(c.Request.Context(), locationID)
	if err != nil {
		respondServiceError(c, err, "Failed to derive inventory")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryRowResponses(rows))
}

// getArticleHistory godoc
// @Summary Get one article's movements at a location
// @Description Replays the article's moves at this location oldest first with running quantities
// @Tags inventory
// @Produce json
// @Param locationID path int true "Location ID"
// @Param articleID path int true "Article ID"
// @Success 200 {array} dto.ArticleMovementResponse
// @Failure 404 {object} map[string]string "Location or article not found"
// @Security BearerAuth
// @Router /stocks/{locationID}/articles/{articleID}/moves [get]
func (h *inventoryHandler) getArticleHistory(c *gin.Context) {
	locationID, ok := parseIDParam(c, "locationID")
	if !ok {
		return
	}
	articleID, ok := parseIDParam(c, "articleID")
	if !ok {
		return
	}
	history, err := h.inventoryService.ArticleHistory(c.Request.Context(), locationID, articleID)
	if err != nil {
		respondServiceError(c, err, "Failed to build article history")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleMovementResponses(history))
}

// postMove godoc
// @Summary Post a stock move
// @Description Appends one double-entry inventory move; moves are immutable once stored
// @Tags inventory
// @Accept json
// @Produce json
// @Param move body dto.CreateStockMoveRequest true "Move details"
// @Success 201 {object} dto.StockMoveResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Article or location not found"
// @Security BearerAuth
// @Router /stock-moves [post]
func (h *inventoryHandler) postMove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postMove", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	move, err := h.inventoryService.PostMove(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to post stock move")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockMoveResponse(move))
}

// getMove godoc
// @Summary Get a stock move by ID
// @Tags inventory
// @Produce json
// @Param moveID path int true "Move ID"
// @Success 200 {object} dto.StockMoveResponse
// @Failure 404 {object} map[string]string "Move not found"
// @Security BearerAuth
// @Router /stock-moves/{moveID} [get]
func (h *inventoryHandler) getMove(c *gin.Context) {
	moveID, ok := parseIDParam(c, "moveID")
	if !ok {
		return
	}
	move, err := h.inventoryService.GetMoveByID(c.Request.Context(), moveID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve stock move")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockMoveResponse(move))
}

// listMoves godoc
// @Summary List stock moves
// @Description Lists moves newest first, optionally filtered by article and/or location
// @Tags inventory
// @Produce json
// @Param articleID query int false "Filter by article"
// @Param locationID query int false "Filter by location on either side"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} dto.StockMoveResponse
// @Security BearerAuth
// @Router /stock-moves [get]
func (h *inventoryHandler) listMoves(c *gin.Context) {
	var pagination dto.PaginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}
	limit, offset := pagination.LimitOffset()

	articleID, ok := optionalIDQuery(c, "articleID")
	if !ok {
		return
	}
	locationID, ok := optionalIDQuery(c, "locationID")
	if !ok {
		return
	}

	moves, err := h.inventoryService.ListMoves(c.Request.Context(), articleID, locationID, limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list stock moves")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockMoveResponses(moves))
}

// optionalIDQuery parses an optional int64 query parameter. It writes the
// 400 response itself and returns ok=false on a malformed value.
func optionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return nil, false
	}
	return &parsed, true
}
