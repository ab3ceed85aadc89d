package mapping

import (
	"github.com/protecfeu/erp_backend/internal/core/domain"
	"github.com/protecfeu/erp_backend/internal/models"
)

// ToModelStockMove converts a domain stock move for storage.
func ToModelStockMove(d domain.StockMove) models.StockMove {
	return models.StockMove{
		MoveID:           d.MoveID,
		ArticleID:        d.ArticleID,
		SourceLocationID: NullInt64(d.SourceLocationID),
		DestLocationID:   NullInt64(d.DestLocationID),
		Quantity:         d.Quantity,
		UnitCost:         NullDecimal(d.UnitCost),
		CurrencyCode:     NullString(d.CurrencyCode),
		MoveDate:         d.MoveDate,
		Reference:        NullString(d.Reference),
		CreatedBy:        d.CreatedBy,
	}
}

// ToDomainStockMove converts a stored stock move back to the domain.
func ToDomainStockMove(m models.StockMove) domain.StockMove {
	return domain.StockMove{
		MoveID:           m.MoveID,
		ArticleID:        m.ArticleID,
		SourceLocationID: Int64Ptr(m.SourceLocationID),
		DestLocationID:   Int64Ptr(m.DestLocationID),
		Quantity:         m.Quantity,
		UnitCost:         DecimalPtr(m.UnitCost),
		CurrencyCode:     m.CurrencyCode.String,
		MoveDate:         m.MoveDate,
		Reference:        m.Reference.String,
		CreatedBy:        m.CreatedBy,
	}
}

// ToDomainDelivery converts a stored delivery back to the domain.
func ToDomainDelivery(m models.Delivery) domain.Delivery {
	return domain.Delivery{
		DeliveryID:     m.DeliveryID,
		OutboundMoveID: Int64Ptr(m.OutboundMoveID),
		InboundMoveID:  Int64Ptr(m.InboundMoveID),
		DeliveryDate:   m.DeliveryDate,
		StatusID:       m.StatusID,
		Driver:         m.Driver.String,
	}
}
