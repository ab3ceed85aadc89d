package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/core/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type DeliveryServiceTestSuite struct {
	suite.Suite
	mockDeliveryRepo  *MockDeliveryRepository
	mockStockRepo     *MockStockRepository
	mockReferenceRepo *MockReferenceRepository
	service           portssvc.DeliveryService
	ctx               context.Context
}

func (suite *DeliveryServiceTestSuite) SetupTest() {
	suite.mockDeliveryRepo = new(MockDeliveryRepository)
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.service = services.NewDeliveryService(suite.mockDeliveryRepo, suite.mockStockRepo, suite.mockReferenceRepo)
	suite.ctx = context.Background()
}

func (suite *DeliveryServiceTestSuite) TestCreateDeliverySuccess() {
	outbound := int64(7)
	req := dto.CreateDeliveryRequest{
		OutboundMoveID: &outbound,
		StatusID:       1,
		Driver:         "M. Tazi",
	}

	suite.mockStockRepo.On("FindMoveByID", suite.ctx, outbound).Return(&domain.StockMove{MoveID: 7}, nil).Once()
	suite.mockReferenceRepo.On("FindDeliveryStatusByID", suite.ctx, int64(1)).Return(&domain.DeliveryStatus{StatusID: 1, Label: "En attente"}, nil).Once()
	suite.mockDeliveryRepo.On("SaveDelivery", suite.ctx, mock.MatchedBy(func(d domain.Delivery) bool {
		return d.OutboundMoveID != nil && *d.OutboundMoveID == outbound &&
			d.StatusID == 1 && d.Driver == "M. Tazi"
	})).Return(&domain.Delivery{DeliveryID: 2, OutboundMoveID: &outbound, StatusID: 1}, nil).Once()

	delivery, err := suite.service.CreateDelivery(suite.ctx, req, "user-1")

	suite.NoError(err)
	suite.Equal(int64(2), delivery.DeliveryID)
	suite.mockDeliveryRepo.AssertExpectations(suite.T())
}

func (suite *DeliveryServiceTestSuite) TestCreateDeliveryUnknownMove() {
	outbound := int64(99)
	req := dto.CreateDeliveryRequest{OutboundMoveID: &outbound, StatusID: 1}

	suite.mockStockRepo.On("FindMoveByID", suite.ctx, outbound).Return(nil, apperrors.ErrNotFound).Once()

	delivery, err := suite.service.CreateDelivery(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(delivery)
	suite.mockDeliveryRepo.AssertNotCalled(suite.T(), "SaveDelivery", mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestUpdateDeliveryStatusUnknownStatus() {
	suite.mockDeliveryRepo.On("FindDeliveryByID", suite.ctx, int64(2)).Return(&domain.Delivery{DeliveryID: 2, StatusID: 1}, nil).Once()
	suite.mockReferenceRepo.On("FindDeliveryStatusByID", suite.ctx, int64(44)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UpdateDeliveryStatus(suite.ctx, 2, dto.UpdateDeliveryStatusRequest{StatusID: 44})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDeliveryRepo.AssertNotCalled(suite.T(), "UpdateDeliveryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestUpdateDeliveryStatusSuccess() {
	suite.mockDeliveryRepo.On("FindDeliveryByID", suite.ctx, int64(2)).Return(&domain.Delivery{DeliveryID: 2, StatusID: 1}, nil).Once()
	suite.mockReferenceRepo.On("FindDeliveryStatusByID", suite.ctx, int64(3)).Return(&domain.DeliveryStatus{StatusID: 3, Label: "Livree"}, nil).Once()
	suite.mockDeliveryRepo.On("UpdateDeliveryStatus", suite.ctx, int64(2), int64(3)).Return(nil).Once()

	err := suite.service.UpdateDeliveryStatus(suite.ctx, 2, dto.UpdateDeliveryStatusRequest{StatusID: 3})

	suite.NoError(err)
	suite.mockDeliveryRepo.AssertExpectations(suite.T())
}

func TestDeliveryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryServiceTestSuite))
}
