package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mlourenci/despensa-api/infrastructure/database/postgres"
	"github.com/mlourenci/despensa-api/internal/domain"
)

const (
	marketsTable  = "markets m"
	productsTable = "products pr"
)

// CatalogRepository resolve produtos e mercados por nome (busca parcial,
// sem distinção de maiúsculas). Usado pelo comparador de cesta básica.
type CatalogRepository interface {
	FindMarketByName(name string) (*domain.Market, error)
	FindProductsByName(name string) ([]*domain.Product, error)
	ListMarkets() ([]*domain.Market, error)
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) FindMarketByName(name string) (*domain.Market, error) {
	sqlQuery, args, err := squirrel.
		Select("m.id, m.name, m.city, m.created_at").
		From(marketsTable).
		Where(squirrel.ILike{"m.name": "%" + name + "%"}).
		OrderBy("m.name ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)

	var (
		market domain.Market
		city   sql.NullString
	)

	err = row.Scan(&market.ID, &market.Name, &city, &market.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear mercado: %w", err)
	}

	if city.Valid {
		market.City = &city.String
	}

	return &market, nil
}

func (r *catalogRepository) FindProductsByName(name string) ([]*domain.Product, error) {
	sqlQuery, args, err := squirrel.
		Select("pr.id, pr.name, pr.brand, pr.category_id, COALESCE(c.name, ''), pr.created_at").
		From(productsTable).
		LeftJoin("categories c ON c.id = pr.category_id").
		Where(squirrel.ILike{"pr.name": "%" + name + "%"}).
		OrderBy("pr.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var (
			product    domain.Product
			brand      sql.NullString
			categoryID sql.NullString
		)

		err := rows.Scan(&product.ID, &product.Name, &brand, &categoryID, &product.Category, &product.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		if brand.Valid {
			product.Brand = &brand.String
		}
		if categoryID.Valid {
			product.CategoryID = &categoryID.String
		}

		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) ListMarkets() ([]*domain.Market, error) {
	sqlQuery, args, err := squirrel.
		Select("m.id, m.name, m.city, m.created_at").
		From(marketsTable).
		OrderBy("m.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	markets := make([]*domain.Market, 0)
	for rows.Next() {
		var (
			market domain.Market
			city   sql.NullString
		)

		if err := rows.Scan(&market.ID, &market.Name, &city, &market.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear mercado: %w", err)
		}

		if city.Valid {
			market.City = &city.String
		}

		markets = append(markets, &market)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return markets, nil
}
