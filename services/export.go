package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/models"
)

// ExportService produces spreadsheet exports of the catalog and the built
// knowledge base for the admin API.
type ExportService struct {
	store     catalog.Store
	knowledge *KnowledgeService
}

func NewExportService(store catalog.Store, knowledge *KnowledgeService) *ExportService {
	return &ExportService{store: store, knowledge: knowledge}
}

// ExportCatalog writes the product catalog and the current knowledge base
// snapshot into an xlsx workbook.
func (s *ExportService) ExportCatalog(ctx context.Context) (*bytes.Buffer, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const productSheet = "Products"
	f.SetSheetName("Sheet1", productSheet)

	headers := []string{"ID", "Name", "Subtitle", "Category", "Tag", "Price", "Description", "Specifications", "Features", "Variations"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(productSheet, cell, h)
	}

	for row, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Subtitle,
			string(p.Category),
			p.Tag,
			p.Price,
			p.Description,
			formatSpecs(p.Specifications),
			strings.Join(p.Features, "; "),
			formatVariations(p.Variations),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(productSheet, cell, v)
		}
	}

	const chunkSheet = "Knowledge Chunks"
	if _, err := f.NewSheet(chunkSheet); err != nil {
		return nil, fmt.Errorf("failed to create chunk sheet: %w", err)
	}

	snap := s.knowledge.Snapshot(ctx)
	chunkHeaders := []string{"ID", "Type", "Product ID", "Category", "Content"}
	for i, h := range chunkHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(chunkSheet, cell, h)
	}
	for row, c := range snap.Chunks {
		values := []interface{}{
			c.ID,
			string(c.Type),
			c.Metadata.ProductID,
			string(c.Metadata.Category),
			c.Content,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(chunkSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write export workbook: %w", err)
	}
	return buf, nil
}

func formatSpecs(specs []models.Specification) string {
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		parts = append(parts, s.Label+": "+s.Value)
	}
	return strings.Join(parts, "; ")
}

func formatVariations(variations []models.Variation) string {
	parts := make([]string, 0, len(variations))
	for _, v := range variations {
		parts = append(parts, v.Name+": "+v.Value)
	}
	return strings.Join(parts, "; ")
}
