package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// CreateProductRequest defines the payload for creating a catalogue product.
type CreateProductRequest struct {
	Code        string `json:"code" binding:"required"`
	Label       string `json:"label" binding:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest defines a partial product update.
type UpdateProductRequest struct {
	Label       *string `json:"label,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID   int64  `json:"productID"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// CreateArticleRequest defines the payload for creating an article (SKU).
type CreateArticleRequest struct {
	ProductID int64 `json:"productID" binding:"required"`
}

// ArticleResponse defines the data returned for an article.
type ArticleResponse struct {
	ArticleID int64 `json:"articleID"`
	ProductID int64 `json:"productID"`
}

// CreateStockLocationRequest defines the payload for creating a warehouse.
type CreateStockLocationRequest struct {
	Label   string `json:"label" binding:"required"`
	Address string `json:"address,omitempty"`
}

// StockLocationResponse defines the data returned for a stock location.
type StockLocationResponse struct {
	LocationID int64  `json:"locationID"`
	Label      string `json:"label"`
	Address    string `json:"address,omitempty"`
}

// CreateStockMoveRequest defines the payload for posting a stock move.
// At least one of sourceLocationID/destLocationID must be set.
type CreateStockMoveRequest struct {
	ArticleID        int64            `json:"articleID" binding:"required"`
	SourceLocationID *int64           `json:"sourceLocationID,omitempty"`
	DestLocationID   *int64           `json:"destLocationID,omitempty"`
	Quantity         decimal.Decimal  `json:"quantity" binding:"required"`
	UnitCost         *decimal.Decimal `json:"unitCost,omitempty"`
	CurrencyCode     string           `json:"currencyCode,omitempty"`
	Reference        string           `json:"reference,omitempty"`
}

// StockMoveResponse defines the data returned for a stock move.
type StockMoveResponse struct {
	MoveID           int64            `json:"moveID"`
	ArticleID        int64            `json:"articleID"`
	SourceLocationID *int64           `json:"sourceLocationID,omitempty"`
	DestLocationID   *int64           `json:"destLocationID,omitempty"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitCost         *decimal.Decimal `json:"unitCost,omitempty"`
	CurrencyCode     string           `json:"currencyCode,omitempty"`
	MoveDate         time.Time        `json:"moveDate"`
	Reference        string           `json:"reference,omitempty"`
}

// InventoryRowResponse is one article's derived on-hand quantity.
type InventoryRowResponse struct {
	LocationID   int64           `json:"locationID"`
	ArticleID    int64           `json:"articleID"`
	QtyAvailable decimal.Decimal `json:"qtyAvailable"`
}

// ArticleMovementResponse is one move with its running quantity.
type ArticleMovementResponse struct {
	MoveID     int64           `json:"moveID"`
	MoveDate   time.Time       `json:"moveDate"`
	Direction  string          `json:"direction"`
	Quantity   decimal.Decimal `json:"quantity"`
	RunningQty decimal.Decimal `json:"runningQty"`
	Reference  string          `json:"reference,omitempty"`
}

// ToProductResponse converts a domain product.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Code:        p.Code,
		Label:       p.Label,
		Description: p.Description,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToArticleResponse converts a domain article.
func ToArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{ArticleID: a.ArticleID, ProductID: a.ProductID}
}

// ToArticleResponses converts a slice of domain articles.
func ToArticleResponses(articles []domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = ToArticleResponse(&articles[i])
	}
	return responses
}

// ToStockLocationResponse converts a domain stock location.
func ToStockLocationResponse(l *domain.StockLocation) StockLocationResponse {
	return StockLocationResponse{LocationID: l.LocationID, Label: l.Label, Address: l.Address}
}

// ToStockLocationResponses converts a slice of domain stock locations.
func ToStockLocationResponses(locations []domain.StockLocation) []StockLocationResponse {
	responses := make([]StockLocationResponse, len(locations))
	for i := range locations {
		responses[i] = ToStockLocationResponse(&locations[i])
	}
	return responses
}

// ToStockMoveResponse converts a domain stock move.
func ToStockMoveResponse(m *domain.StockMove) StockMoveResponse {
	return StockMoveResponse{
		MoveID:           m.MoveID,
		ArticleID:        m.ArticleID,
		SourceLocationID: m.SourceLocationID,
		DestLocationID:   m.DestLocationID,
		Quantity:         m.Quantity,
		UnitCost:         m.UnitCost,
		CurrencyCode:     m.CurrencyCode,
		MoveDate:         m.MoveDate,
		Reference:        m.Reference,
	}
}

// ToStockMoveResponses converts a slice of domain stock moves.
func ToStockMoveResponses(moves []domain.StockMove) []StockMoveResponse {
	responses := make([]StockMoveResponse, len(moves))
	for i := range moves {
		responses[i] = ToStockMoveResponse(&moves[i])
	}
	return responses
}

// ToInventoryRowResponses converts derived inventory rows.
func ToInventoryRowResponses(rows []domain.InventoryRow) []InventoryRowResponse {
	responses := make([]InventoryRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = InventoryRowResponse(row)
	}
	return responses
}

// ToArticleMovementResponses converts running-quantity movements.
func ToArticleMovementResponses(movements []domain.ArticleMovement) []ArticleMovementResponse {
	responses := make([]ArticleMovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = ArticleMovementResponse{
			MoveID:     m.MoveID,
			MoveDate:   m.MoveDate,
			Direction:  string(m.Direction),
			Quantity:   m.Quantity,
			RunningQty: m.RunningQty,
			Reference:  m.Reference,
		}
	}
	return responses
}
