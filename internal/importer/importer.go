package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"onlinemart-client/internal/domain"
)

type ProductCreator interface {
	CreateAdminProduct(ctx context.Context, token string, req domain.AdminProductCreate) (domain.AdminProduct, error)
}

// CSVImporter reads a product CSV export and creates each row through the
// admin catalog endpoint.
type CSVImporter struct {
	reader  *csv.Reader
	gateway ProductCreator
	token   string
}

func NewCSVImporter(r io.Reader, gateway ProductCreator, token string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:  csvr,
		gateway: gateway,
		token:   token,
	}
}

// Run parses CSV rows and creates one product per row. It returns how many
// products were created before the first failure, if any.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		req, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if req == nil {
			continue
		}

		if _, err := i.gateway.CreateAdminProduct(ctx, i.token, *req); err != nil {
			return imported, fmt.Errorf("create product %q: %w", req.Description, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.AdminProductCreate, error) {
	description := pick(record, index, "description")
	wholesale := pick(record, index, "wholesalePrice")
	retail := pick(record, index, "retailPrice")
	stock := pick(record, index, "stockQuantity")

	if description == "" && wholesale == "" && retail == "" && stock == "" {
		return nil, nil
	}
	if description == "" {
		return nil, errors.New("invalid product row: missing description")
	}

	wholesalePrice, err := strconv.ParseFloat(wholesale, 64)
	if err != nil || wholesalePrice <= 0 {
		return nil, fmt.Errorf("invalid wholesale price for %q: %s", description, wholesale)
	}
	retailPrice, err := strconv.ParseFloat(retail, 64)
	if err != nil || retailPrice <= 0 {
		return nil, fmt.Errorf("invalid retail price for %q: %s", description, retail)
	}
	stockQuantity := 0
	if stock != "" {
		stockQuantity, err = strconv.Atoi(stock)
		if err != nil || stockQuantity < 0 {
			return nil, fmt.Errorf("invalid stock quantity for %q: %s", description, stock)
		}
	}

	return &domain.AdminProductCreate{
		Description:    description,
		WholesalePrice: wholesalePrice,
		RetailPrice:    retailPrice,
		StockQuantity:  stockQuantity,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
