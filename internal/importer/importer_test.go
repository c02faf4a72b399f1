package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"onlinemart-client/internal/domain"
)

type stubCreator struct {
	created []domain.AdminProductCreate
	failAt  int // 1-based call index that fails; 0 for never
	calls   int
}

func (s *stubCreator) CreateAdminProduct(_ context.Context, _ string, req domain.AdminProductCreate) (domain.AdminProduct, error) {
	s.calls++
	if s.failAt != 0 && s.calls == s.failAt {
		return domain.AdminProduct{}, errors.New("boom")
	}
	s.created = append(s.created, req)
	return domain.AdminProduct{ID: s.calls, Description: req.Description}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `description,wholesalePrice,retailPrice,stockQuantity
Monstera Deliciosa,12.50,24.50,10
,,,
Boston Fern,4.00,9.00,25`

	creator := &stubCreator{}
	imported, err := NewCSVImporter(strings.NewReader(csvData), creator, "tok").Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 products imported, got %d", imported)
	}
	if len(creator.created) != 2 {
		t.Fatalf("expected 2 create calls, got %d", len(creator.created))
	}
	first := creator.created[0]
	if first.Description != "Monstera Deliciosa" || first.WholesalePrice != 12.5 || first.RetailPrice != 24.5 || first.StockQuantity != 10 {
		t.Fatalf("unexpected first product %+v", first)
	}
}

func TestCSVImporter_ReorderedColumns(t *testing.T) {
	csvData := `retailPrice,description,stockQuantity,wholesalePrice
9.00,Boston Fern,25,4.00`

	creator := &stubCreator{}
	imported, err := NewCSVImporter(strings.NewReader(csvData), creator, "tok").Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if imported != 1 || creator.created[0].Description != "Boston Fern" || creator.created[0].WholesalePrice != 4.0 {
		t.Fatalf("unexpected import %+v", creator.created)
	}
}

func TestCSVImporter_InvalidRowAborts(t *testing.T) {
	csvData := `description,wholesalePrice,retailPrice,stockQuantity
Monstera,12.50,24.50,10
Broken,free,9.00,5`

	creator := &stubCreator{}
	imported, err := NewCSVImporter(strings.NewReader(csvData), creator, "tok").Run(context.Background())
	if err == nil {
		t.Fatalf("expected an error for the invalid price")
	}
	if imported != 1 {
		t.Fatalf("expected 1 product imported before the failure, got %d", imported)
	}
}

func TestCSVImporter_GatewayFailureReportsCount(t *testing.T) {
	csvData := `description,wholesalePrice,retailPrice,stockQuantity
Monstera,12.50,24.50,10
Fern,4.00,9.00,25
Fig,20.00,45.00,3`

	creator := &stubCreator{failAt: 3}
	imported, err := NewCSVImporter(strings.NewReader(csvData), creator, "tok").Run(context.Background())
	if err == nil {
		t.Fatalf("expected the gateway error to surface")
	}
	if imported != 2 {
		t.Fatalf("expected 2 products imported before the failure, got %d", imported)
	}
}
