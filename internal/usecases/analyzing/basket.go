package analyzing

import (
	"sort"
	"strings"
	"time"

	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/mlourenci/despensa-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// stapleQuote é o preço mais recente observado de um item da cesta em um
// mercado
type stapleQuote struct {
	marketName string
	price      float64
	date       time.Time
}

// CompareBasicBasket compara o custo da cesta básica de referência entre os
// mercados informados, usando o preço mais recente observado de cada item em
// cada mercado. Mercados não reconhecidos são ignorados; a comparação falha
// apenas quando menos de dois mercados são resolvidos.
func (s *Service) CompareBasicBasket(params BasketParams) (*domain.BasketResponse, error) {
	if len(params.MarketNames) < 2 {
		return &domain.BasketResponse{
			Success: false,
			Message: "Informe pelo menos dois mercados para comparar a cesta básica",
		}, nil
	}

	// Resolve os nomes informados por busca parcial; nomes desconhecidos não
	// derrubam a comparação
	markets := make([]*domain.Market, 0, len(params.MarketNames))
	seen := make(map[string]struct{})
	for _, name := range params.MarketNames {
		market, err := s.catalogRepo.FindMarketByName(strings.TrimSpace(name))
		if err != nil {
			return nil, errors.Wrapf(err, "falha ao resolver mercado %q", name)
		}
		if market == nil {
			logrus.WithField("market", name).Warn("cesta: mercado não reconhecido, ignorando")
			continue
		}
		if _, dup := seen[market.ID]; dup {
			continue
		}
		seen[market.ID] = struct{}{}
		markets = append(markets, market)
	}

	if len(markets) < 2 {
		return &domain.BasketResponse{
			Success: false,
			Message: "Menos de dois mercados reconhecidos: não há comparação possível",
		}, nil
	}

	purchases, err := s.purchaseRepo.ListPurchases(nil)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao consultar histórico de compras")
	}

	staples := s.cfg.Analysis.BasketStaples

	// quotes[staple][marketID] = preço mais recente observado
	quotes := make(map[string]map[string]stapleQuote, len(staples))
	for _, staple := range staples {
		quotes[staple] = make(map[string]stapleQuote)
	}

	for _, purchase := range purchases {
		if purchase == nil || purchase.MarketID == nil {
			continue
		}
		marketID := *purchase.MarketID
		if _, relevant := seen[marketID]; !relevant {
			continue
		}
		for _, item := range purchase.Items {
			if item == nil {
				continue
			}
			itemName := NormalizeName(item.ProductName)
			for _, staple := range staples {
				if !strings.Contains(itemName, NormalizeName(staple)) {
					continue
				}
				if current, found := quotes[staple][marketID]; found && !purchase.Date.After(current.date) {
					continue
				}
				quotes[staple][marketID] = stapleQuote{
					marketName: purchase.MarketName,
					price:      coerceNonNegative(item.UnitPrice),
					date:       purchase.Date,
				}
			}
		}
	}

	comparison := make([]*domain.MarketBasketComparison, 0, len(markets))
	for _, market := range markets {
		entry := &domain.MarketBasketComparison{
			MarketID:   market.ID,
			MarketName: market.Name,
		}

		for _, staple := range staples {
			quote, found := quotes[staple][market.ID]
			if !found {
				entry.MissingProducts = append(entry.MissingProducts, staple)
				continue
			}
			entry.Total += quote.price
			entry.FoundCount++
		}

		entry.Total = utils.RoundWithTwoDecimalPlace(entry.Total)
		if len(staples) > 0 {
			entry.CoveragePercent = utils.RoundWithTwoDecimalPlace(
				float64(entry.FoundCount) / float64(len(staples)) * 100,
			)
		}

		comparison = append(comparison, entry)
	}

	// Ranking por total ascendente; mercados sem nenhum item encontrado vão
	// para o fim da lista em vez de serem descartados
	sort.Slice(comparison, func(i, j int) bool {
		a, b := comparison[i], comparison[j]
		if (a.FoundCount == 0) != (b.FoundCount == 0) {
			return a.FoundCount != 0
		}
		if a.Total != b.Total {
			return a.Total < b.Total
		}
		return a.MarketName < b.MarketName
	})

	cheapest := comparison[0]
	for position, entry := range comparison {
		entry.Position = position + 1
		entry.DifferenceFromCheapest = utils.RoundWithTwoDecimalPlace(entry.Total - cheapest.Total)
		if cheapest.Total > 0 {
			entry.DifferencePercent = utils.RoundWithTwoDecimalPlace(
				(entry.Total - cheapest.Total) / cheapest.Total * 100,
			)
		}
	}

	// Análise por produto: mercado mais barato e mais caro de cada item
	// encontrado em pelo menos um mercado
	productAnalysis := make([]*domain.ProductPriceAnalysis, 0, len(staples))
	maxPotentialSaving := 0.0

	for _, staple := range staples {
		marketQuotes := quotes[staple]
		if len(marketQuotes) == 0 {
			continue
		}

		analysis := &domain.ProductPriceAnalysis{
			Product:      staple,
			MarketsFound: len(marketQuotes),
		}

		first := true
		for _, quote := range marketQuotes {
			if first {
				analysis.CheapestMarket = quote.marketName
				analysis.CheapestPrice = quote.price
				analysis.MostExpensiveMarket = quote.marketName
				analysis.MostExpensivePrice = quote.price
				first = false
				continue
			}
			if quote.price < analysis.CheapestPrice {
				analysis.CheapestMarket = quote.marketName
				analysis.CheapestPrice = quote.price
			}
			if quote.price > analysis.MostExpensivePrice {
				analysis.MostExpensiveMarket = quote.marketName
				analysis.MostExpensivePrice = quote.price
			}
		}

		analysis.PriceSpread = utils.RoundWithTwoDecimalPlace(
			analysis.MostExpensivePrice - analysis.CheapestPrice,
		)
		if len(marketQuotes) > 1 {
			maxPotentialSaving += analysis.MostExpensivePrice - analysis.CheapestPrice
		}

		productAnalysis = append(productAnalysis, analysis)
	}

	// Maior oportunidade de economia primeiro
	sort.Slice(productAnalysis, func(i, j int) bool {
		if productAnalysis[i].PriceSpread != productAnalysis[j].PriceSpread {
			return productAnalysis[i].PriceSpread > productAnalysis[j].PriceSpread
		}
		return productAnalysis[i].Product < productAnalysis[j].Product
	})

	analysisID, _ := utils.GenerateID()

	logrus.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"markets":     len(comparison),
		"staples":     len(staples),
	}).Debug("cesta: comparação de cesta básica concluída")

	return &domain.BasketResponse{
		Success:          true,
		AnalysisID:       analysisID,
		MarketComparison: comparison,
		ProductAnalysis:  productAnalysis,
		Summary: &domain.BasketSummary{
			CheapestMarket:     cheapest.MarketName,
			MaxPotentialSaving: utils.RoundWithTwoDecimalPlace(maxPotentialSaving),
			TotalStaples:       len(staples),
		},
	}, nil
}
