package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	registry *stubRegistry
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.registry = &stubRegistry{names: map[string]string{
		"11222333000181": "ACME",
	}}
	suite.service = services.NewReportingService(suite.mockRepo, suite.registry, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func receivedTxn(id int64, tag domain.TypeTag, value string, document *string) domain.Transaction {
	return domain.Transaction{
		ID:              id,
		Date:            time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description:     string(tag),
		Value:           decimal.RequireFromString(value),
		Type:            tag,
		TransactionType: domain.DirectionFor(decimal.RequireFromString(value)),
		Document:        document,
	}
}

func (suite *ReportingServiceTestSuite) TestReceived_TotalsPerTag() {
	ctx := context.Background()
	doc := "11222333000181"
	txns := []domain.Transaction{
		receivedTxn(3, domain.TagPixRecebido, "100.00", &doc),
		receivedTxn(2, domain.TagTedRecebida, "250.00", nil),
		receivedTxn(1, domain.TagPagamento, "-75.00", nil),
	}

	suite.mockRepo.On("ListReceived", ctx, domain.ReceivedFilter{}).Return(txns, nil).Once()
	suite.mockRepo.On("ListReceivedDocuments", ctx).Return([]string{doc}, nil).Once()

	rows, totals, documents, err := suite.service.Received(ctx, domain.ReceivedFilter{})
	suite.Require().NoError(err)
	suite.Len(rows, 3)
	suite.Equal([]string{doc}, documents)

	suite.True(totals.PixRecebido.Equal(decimal.RequireFromString("100.00")))
	suite.True(totals.TedRecebida.Equal(decimal.RequireFromString("250.00")))
	// Payments total as absolute values.
	suite.True(totals.Pagamento.Equal(decimal.RequireFromString("75.00")))

	// Cached counterparty names are attached; unknown documents stay blank.
	suite.Equal("ACME", rows[0].CompanyName)
	suite.Empty(rows[1].CompanyName)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestReceived_FilterPassedThrough() {
	ctx := context.Background()
	filter := domain.ReceivedFilter{Type: domain.TagPixRecebido, Document: "11222333000181"}

	suite.mockRepo.On("ListReceived", ctx, filter).Return([]domain.Transaction{}, nil).Once()
	suite.mockRepo.On("ListReceivedDocuments", ctx).Return([]string{}, nil).Once()

	rows, totals, _, err := suite.service.Received(ctx, filter)
	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.True(totals.PixRecebido.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummaryByType_DisplayGroups() {
	ctx := context.Background()
	summary := []domain.TypeSummaryRow{
		{Type: domain.TagResgate, Count: 2, Total: decimal.RequireFromString("3000.00")},
		{Type: domain.TagTarifa, Count: 5, Total: decimal.RequireFromString("-229.50")},
		{Type: domain.TagJuros, Count: 1, Total: decimal.RequireFromString("-12.34")},
	}

	suite.mockRepo.On("SummarizeByType", ctx).Return(summary, nil).Once()

	rows, err := suite.service.SummaryByType(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.Equal("CONTAMAX", rows[0].DisplayGroup)
	suite.Equal("DESPESAS OPERACIONAIS", rows[1].DisplayGroup)
	// Tags with no bucket display as themselves.
	suite.Equal(string(domain.TagJuros), rows[2].DisplayGroup)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
