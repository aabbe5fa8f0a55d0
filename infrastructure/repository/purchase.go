package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mlourenci/despensa-api/infrastructure/database/postgres"
	"github.com/mlourenci/despensa-api/internal/domain"
)

const (
	purchasesTable     = "purchases p"
	purchaseItemsTable = "purchase_items pi"
)

// PurchaseRepository expõe o histórico de compras para o motor de análise.
// A listagem retorna as compras ordenadas por data descendente com os itens
// aninhados já resolvidos (nome do produto, categoria e mercado).
type PurchaseRepository interface {
	ListPurchases(filters *domain.PurchaseFilters) ([]*domain.Purchase, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

func (r *purchaseRepository) ListPurchases(filters *domain.PurchaseFilters) ([]*domain.Purchase, error) {
	query := squirrel.
		Select(
			"p.id",
			"p.market_id",
			"COALESCE(m.name, '')",
			"p.date",
			"pi.id",
			"pi.product_id",
			"COALESCE(pr.name, pi.product_name)",
			"COALESCE(c.name, '')",
			"pi.quantity",
			"pi.unit_price",
			"pi.total",
		).
		From(purchasesTable).
		Join("purchase_items pi ON pi.purchase_id = p.id").
		LeftJoin("products pr ON pr.id = pi.product_id").
		LeftJoin("categories c ON c.id = pr.category_id").
		LeftJoin("markets m ON m.id = p.market_id").
		OrderBy("p.date DESC", "p.id", "pi.id").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.StartDate != nil {
			query = query.Where(squirrel.GtOrEq{"p.date": *filters.StartDate})
		}
		if filters.EndDate != nil {
			query = query.Where(squirrel.Lt{"p.date": *filters.EndDate})
		}
		if filters.ProductName != "" {
			query = query.Where(squirrel.ILike{"COALESCE(pr.name, pi.product_name)": "%" + filters.ProductName + "%"})
		}
		if filters.MarketName != "" {
			query = query.Where(squirrel.ILike{"m.name": "%" + filters.MarketName + "%"})
		}
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	// As linhas chegam achatadas (compra x item); reagrupa por compra
	// preservando a ordem por data descendente
	purchases := make([]*domain.Purchase, 0)
	byID := make(map[string]*domain.Purchase)

	for rows.Next() {
		var (
			purchaseID string
			marketID   sql.NullString
			marketName string
			date       time.Time
			item       domain.LineItem
			productID  sql.NullString
		)

		err := rows.Scan(
			&purchaseID,
			&marketID,
			&marketName,
			&date,
			&item.ID,
			&productID,
			&item.ProductName,
			&item.Category,
			&item.Quantity,
			&item.UnitPrice,
			&item.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear compra: %w", err)
		}

		purchase, ok := byID[purchaseID]
		if !ok {
			purchase = &domain.Purchase{
				ID:         purchaseID,
				MarketName: marketName,
				Date:       date,
				Items:      make([]*domain.LineItem, 0, 4),
			}
			if marketID.Valid {
				purchase.MarketID = &marketID.String
			}
			byID[purchaseID] = purchase
			purchases = append(purchases, purchase)
		}

		item.PurchaseID = purchaseID
		if productID.Valid {
			item.ProductID = &productID.String
		}
		purchase.Items = append(purchase.Items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return purchases, nil
}
