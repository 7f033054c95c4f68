package tests

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"autobus-caisse/register-svc/internal/domain"
	"autobus-caisse/register-svc/internal/mocks"
	"autobus-caisse/register-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCatalogDB(t *testing.T) (*storage.PostgresCatalog, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresCatalog(db), sqlMock
}

func TestPostgresCatalog_LoadCatalog(t *testing.T) {
	repo, sqlMock := setupCatalogDB(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT category, name, price")).
		WillReturnRows(sqlmock.NewRows([]string{"category", "name", "price"}).
			AddRow("Apéritifs", "Ricard", "4.00").
			AddRow("Bières", "Demi", "3.50").
			AddRow("Bières", "Pinte", "6.00").
			AddRow("Cocktails", "Cocktail", "8.00"))
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT category, subcategory, name, price_glass, price_double, price_bottle")).
		WillReturnRows(sqlmock.NewRows([]string{"category", "subcategory", "name", "price_glass", "price_double", "price_bottle"}).
			AddRow("Vins", "Rouges", "Pic Saint Loup - Héritage", "6", "11", "24").
			AddRow("Vins", "Bulles", "Prosecco DOC - Riccadonna", "7", "12", "26").
			AddRow("Vins", "Rouges", "Bordeaux AOP - Altitude", "6", "10", "22"))

	catalog, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Menu, 3)
	assert.Equal(t, "Apéritifs", catalog.Menu[0].Category)
	assert.Equal(t, "Bières", catalog.Menu[1].Category)
	assert.Equal(t, []string{"Demi", "Pinte"}, []string{catalog.Menu[1].Items[0].Name, catalog.Menu[1].Items[1].Name})
	assertAmount(t, "3.50", catalog.Menu[1].Items[0].Price)

	assert.Equal(t, "Vins", catalog.Wines.Category)
	assert.Equal(t, []string{"Rouges", "Bulles"}, subcategoryNames(catalog))
	require.Len(t, catalog.Wines.Subcategories[0].Wines, 2)
	assertAmount(t, "24.00", catalog.Wines.Subcategories[0].Wines[0].Prices.ByBottle)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresCatalog_LoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(sqlmock.Sqlmock)
		wantMsg string
	}{
		{
			name: "menu query fails",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT category, name, price").WillReturnError(errors.New("connection refused"))
			},
			wantMsg: "load menu items",
		},
		{
			name: "wine query fails",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT category, name, price").
					WillReturnRows(sqlmock.NewRows([]string{"category", "name", "price"}))
				m.ExpectQuery("SELECT category, subcategory").WillReturnError(errors.New("relation does not exist"))
			},
			wantMsg: "load wines",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, sqlMock := setupCatalogDB(t)
			testCase.prepare(sqlMock)

			_, err := repo.LoadCatalog(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantMsg)
		})
	}
}

func TestPostgresCatalog_EnsureSchema(t *testing.T) {
	repo, sqlMock := setupCatalogDB(t)
	sqlMock.ExpectExec("CREATE TABLE IF NOT EXISTS menu_items").WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectExec("CREATE TABLE IF NOT EXISTS wines").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema())
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresCatalog_Seed(t *testing.T) {
	small := domain.Catalog{
		Menu: []domain.MenuCategory{{Category: "Bières", Items: []domain.CatalogItem{{Name: "Demi", Price: dec("3.50")}}}},
		Wines: domain.WineCategory{Category: "Vins", Subcategories: []domain.WineSubcategory{{
			Name:  "Rosés",
			Wines: []domain.WineItem{{Name: "Gris Blanc - Gérard Bertrand", Prices: domain.WinePrices{ByGlass: dec("6"), ByDoubleGlass: dec("11"), ByBottle: dec("24")}}},
		}}},
	}

	t.Run("empty tables", func(t *testing.T) {
		repo, sqlMock := setupCatalogDB(t)
		sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menu_items")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO menu_items").
			WithArgs("Bières", "Demi", sqlmock.AnyArg(), 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		sqlMock.ExpectExec("INSERT INTO wines").
			WithArgs("Vins", "Rosés", "Gris Blanc - Gérard Bertrand", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		sqlMock.ExpectCommit()

		assert.NoError(t, repo.Seed(context.Background(), small))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("already seeded", func(t *testing.T) {
		repo, sqlMock := setupCatalogDB(t)
		sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menu_items")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		assert.NoError(t, repo.Seed(context.Background(), small))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("insert fails rolls back", func(t *testing.T) {
		repo, sqlMock := setupCatalogDB(t)
		sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM menu_items")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO menu_items").WillReturnError(errors.New("constraint"))
		sqlMock.ExpectRollback()

		assert.Error(t, repo.Seed(context.Background(), small))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestStaticCatalog(t *testing.T) {
	catalog, err := storage.NewStaticCatalog().LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Apéritifs", "Cocktails", "Bières"},
		[]string{catalog.Menu[0].Category, catalog.Menu[1].Category, catalog.Menu[2].Category})
	assert.Equal(t, []string{"Bulles", "Blancs", "Rouges", "Rosés"}, subcategoryNames(catalog))

	spritz, ok := catalog.FindItem("St Germain Spritz")
	require.True(t, ok)
	assertAmount(t, "10.00", spritz.Price)
}

func TestKafkaPublisher_PublishLedgerEvent(t *testing.T) {
	writer := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(writer)
	event := domain.LedgerEvent{
		Type:        domain.EventTransactionRecorded,
		Transaction: tx("tx-9", "7.50", domain.PaymentCash, line("Ricard", "4.00"), line("Demi", "3.50")),
		Timestamp:   fixedTime,
	}

	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msg kafka.Message) bool {
		var decoded domain.LedgerEvent
		if err := json.Unmarshal(msg.Value, &decoded); err != nil {
			return false
		}
		return string(msg.Key) == "tx-9" &&
			decoded.Type == domain.EventTransactionRecorded &&
			decoded.Transaction.Total.Equal(dec("7.5")) &&
			len(decoded.Transaction.Items) == 2
	})).Return(nil).Once()

	assert.NoError(t, publisher.PublishLedgerEvent(context.Background(), event))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(writer)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	err := publisher.PublishLedgerEvent(context.Background(), domain.LedgerEvent{Type: domain.EventTransactionDeleted})
	assert.EqualError(t, err, "leader not available")
}
