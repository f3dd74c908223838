package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// Report kinds.
const (
	ReportInventory = "inventory"
	ReportValue     = "value"
	ReportArtist    = "artist"
	ReportLocation  = "location"
)

// ReportItem is one artwork row with denormalized names.
type ReportItem struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	Dimensions string `json:"dimensions"`
}

// InventoryReport lists every matching artwork.
type InventoryReport struct {
	Title string       `json:"title"`
	Count int          `json:"count"`
	Items []ReportItem `json:"items"`
}

// ValueReportItem carries an artwork's valuation figures.
type ValueReportItem struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Artist        string              `json:"artist"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"`
	MarketValue   decimal.NullDecimal `json:"marketValue"`
	InsuredValue  decimal.NullDecimal `json:"insuredValue"`
	ValueChange   string              `json:"valueChange"`
}

// ValueReport sums valuations over the matching artworks. Missing values
// count as zero in the totals.
type ValueReport struct {
	Title              string            `json:"title"`
	Count              int               `json:"count"`
	Items              []ValueReportItem `json:"items"`
	TotalPurchaseValue decimal.Decimal   `json:"totalPurchaseValue"`
	TotalMarketValue   decimal.Decimal   `json:"totalMarketValue"`
	TotalInsuredValue  decimal.Decimal   `json:"totalInsuredValue"`
	ValueChange        string            `json:"valueChange"`
}

// TypeGroup buckets an artist's artworks by type name.
type TypeGroup struct {
	Type  string       `json:"type"`
	Count int          `json:"count"`
	Items []ReportItem `json:"items"`
}

// ArtistReportEntry summarizes one artist's matching artworks.
type ArtistReportEntry struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	ArtworkCount     int             `json:"artworkCount"`
	TotalMarketValue decimal.Decimal `json:"totalMarketValue"`
	Types            []TypeGroup     `json:"types"`
}

// ArtistReport groups the collection per artist. Artists without matching
// artworks are left out entirely.
type ArtistReport struct {
	Title   string              `json:"title"`
	Artists []ArtistReportEntry `json:"artists"`
}

// LocationReportEntry summarizes one location's matching artworks.
type LocationReportEntry struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	ArtworkCount int             `json:"artworkCount"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	Items        []ReportItem    `json:"items"`
}

// LocationReport groups the collection per location.
type LocationReport struct {
	Title     string                `json:"title"`
	Locations []LocationReportEntry `json:"locations"`
}

// ReportService builds read-only aggregations over the artwork set. Reports
// are unpaginated: the result is bounded only by the collection size.
type ReportService interface {
	Generate(ctx context.Context, kind string, filter repository.ArtworkFilter) (interface{}, error)
}

type reportService struct {
	artworkRepo  repository.ArtworkRepository
	artistRepo   repository.ArtistRepository
	locationRepo repository.LocationRepository
}

// NewReportService builds a ReportService.
func NewReportService(
	artworkRepo repository.ArtworkRepository,
	artistRepo repository.ArtistRepository,
	locationRepo repository.LocationRepository,
) ReportService {
	return &reportService{
		artworkRepo:  artworkRepo,
		artistRepo:   artistRepo,
		locationRepo: locationRepo,
	}
}

func (s *reportService) Generate(ctx context.Context, kind string, filter repository.ArtworkFilter) (interface{}, error) {
	switch kind {
	case ReportInventory:
		return s.inventory(ctx, filter)
	case ReportValue:
		return s.value(ctx, filter)
	case ReportArtist:
		return s.byArtist(ctx, filter)
	case ReportLocation:
		return s.byLocation(ctx, filter)
	default:
		return nil, apperrors.ErrInvalidReportType
	}
}

func (s *reportService) inventory(ctx context.Context, filter repository.ArtworkFilter) (*InventoryReport, error) {
	artworks, err := s.artworkRepo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ReportItem, 0, len(artworks))
	for _, aw := range artworks {
		items = append(items, reportItem(aw))
	}
	return &InventoryReport{
		Title: "Inventarisrapport",
		Count: len(items),
		Items: items,
	}, nil
}

func (s *reportService) value(ctx context.Context, filter repository.ArtworkFilter) (*ValueReport, error) {
	artworks, err := s.artworkRepo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	var totalPurchase, totalMarket, totalInsured decimal.Decimal
	items := make([]ValueReportItem, 0, len(artworks))
	for _, aw := range artworks {
		totalPurchase = totalPurchase.Add(decimalOrZero(aw.PurchasePrice))
		totalMarket = totalMarket.Add(decimalOrZero(aw.MarketValue))
		totalInsured = totalInsured.Add(decimalOrZero(aw.InsuredValue))

		items = append(items, ValueReportItem{
			ID:            aw.ID,
			Title:         aw.Title,
			Artist:        artistName(aw),
			PurchasePrice: aw.PurchasePrice,
			MarketValue:   aw.MarketValue,
			InsuredValue:  aw.InsuredValue,
			ValueChange:   valueChange(decimalOrZero(aw.PurchasePrice), decimalOrZero(aw.MarketValue)),
		})
	}

	return &ValueReport{
		Title:              "Waarderapport",
		Count:              len(items),
		Items:              items,
		TotalPurchaseValue: totalPurchase,
		TotalMarketValue:   totalMarket,
		TotalInsuredValue:  totalInsured,
		ValueChange:        valueChange(totalPurchase, totalMarket),
	}, nil
}

// byArtist fans out one filtered query per artist, in the artists' name
// order. Artists whose artworks all fall outside the filter are dropped.
func (s *reportService) byArtist(ctx context.Context, filter repository.ArtworkFilter) (*ArtistReport, error) {
	artists, err := s.artistRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ArtistReportEntry, 0, len(artists))
	for _, artist := range artists {
		if filter.ArtistID != 0 && filter.ArtistID != artist.ID {
			continue
		}
		perArtist := filter
		perArtist.ArtistID = artist.ID

		artworks, err := s.artworkRepo.ListFiltered(ctx, perArtist)
		if err != nil {
			return nil, err
		}
		if len(artworks) == 0 {
			continue
		}

		var total decimal.Decimal
		groups := make(map[string]*TypeGroup)
		var order []string
		for _, aw := range artworks {
			total = total.Add(decimalOrZero(aw.MarketValue))

			name := typeName(aw)
			group, ok := groups[name]
			if !ok {
				group = &TypeGroup{Type: name}
				groups[name] = group
				order = append(order, name)
			}
			group.Count++
			group.Items = append(group.Items, reportItem(aw))
		}

		types := make([]TypeGroup, 0, len(order))
		for _, name := range order {
			types = append(types, *groups[name])
		}

		entries = append(entries, ArtistReportEntry{
			ID:               artist.ID,
			Name:             artist.Name,
			ArtworkCount:     len(artworks),
			TotalMarketValue: total,
			Types:            types,
		})
	}

	return &ArtistReport{Title: "Rapport per kunstenaar", Artists: entries}, nil
}

// byLocation mirrors byArtist with a flat item list per location.
func (s *reportService) byLocation(ctx context.Context, filter repository.ArtworkFilter) (*LocationReport, error) {
	locations, err := s.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LocationReportEntry, 0, len(locations))
	for _, location := range locations {
		if filter.LocationID != 0 && filter.LocationID != location.ID {
			continue
		}
		perLocation := filter
		perLocation.LocationID = location.ID

		artworks, err := s.artworkRepo.ListFiltered(ctx, perLocation)
		if err != nil {
			return nil, err
		}
		if len(artworks) == 0 {
			continue
		}

		var total decimal.Decimal
		items := make([]ReportItem, 0, len(artworks))
		for _, aw := range artworks {
			total = total.Add(decimalOrZero(aw.MarketValue))
			items = append(items, reportItem(aw))
		}

		entries = append(entries, LocationReportEntry{
			ID:           location.ID,
			Name:         location.Name,
			ArtworkCount: len(artworks),
			TotalValue:   total,
			Items:        items,
		})
	}

	return &LocationReport{Title: "Rapport per locatie", Locations: entries}, nil
}

func reportItem(aw model.Artwork) ReportItem {
	return ReportItem{
		ID:         aw.ID,
		Title:      aw.Title,
		Artist:     artistName(aw),
		Type:       typeName(aw),
		Location:   locationName(aw),
		Dimensions: formatDimensions(aw.HeightCM, aw.WidthCM, aw.DepthCM),
	}
}

func artistName(aw model.Artwork) string {
	if aw.Artist != nil {
		return aw.Artist.Name
	}
	return "Onbekend"
}

func typeName(aw model.Artwork) string {
	if aw.Type != nil {
		return aw.Type.Name
	}
	return "Onbekend"
}

func locationName(aw model.Artwork) string {
	if aw.Location != nil {
		return aw.Location.Name
	}
	return "Onbekend"
}

// formatDimensions renders "H x W cm" or "H x W x D cm"; without height or
// width there is nothing sensible to show.
func formatDimensions(height, width, depth *float64) string {
	if height == nil || width == nil {
		return "Onbekend"
	}
	s := formatCM(*height) + " x " + formatCM(*width)
	if depth != nil {
		s += " x " + formatCM(*depth)
	}
	return s + " cm"
}

func formatCM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// valueChange renders the percentage difference between purchase and market
// value, two decimals. Without a purchase price there is no baseline.
func valueChange(purchase, market decimal.Decimal) string {
	if purchase.IsZero() {
		return "N/A"
	}
	pct := market.Sub(purchase).Div(purchase).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s%%", pct.StringFixed(2))
}

func decimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Decimal{}
	}
	return d.Decimal
}
