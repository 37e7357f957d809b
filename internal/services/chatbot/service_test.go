package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

type fakeCatalog struct {
	products []models.Product
	err      error
}

func (f *fakeCatalog) ListAvailableProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func product(name, priceStr string, opts ...func(*models.Product)) models.Product {
	p := models.Product{Name: name, Price: decimal.RequireFromString(priceStr), IsAvailable: true}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func vegan(p *models.Product)      { p.IsVegan = true }
func vegetarian(p *models.Product) { p.IsVegetarian = true }

func withAllergens(allergens ...string) func(*models.Product) {
	return func(p *models.Product) { p.Allergens = allergens }
}

func TestRespond_Vegan(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{
		product("Adana Kebap", "185.00"),
		product("Mercimek Çorbası", "45.00", vegan),
		product("Sigara Böreği", "60.00", vegetarian),
	}}
	svc := NewService(catalog, logger.New("test"))

	reply, err := svc.Respond(context.Background(), "Vegan bir şeyler var mı?")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(reply, "Mercimek Çorbası") {
		t.Errorf("reply missing vegan product: %q", reply)
	}
	if !strings.Contains(reply, "Sigara Böreği") {
		t.Errorf("reply missing vegetarian product: %q", reply)
	}
	if strings.Contains(reply, "Adana Kebap") {
		t.Errorf("reply includes non-vegan product: %q", reply)
	}
}

func TestRespond_VeganEmptyCatalog(t *testing.T) {
	svc := NewService(&fakeCatalog{}, logger.New("test"))

	reply, err := svc.Respond(context.Background(), "vegan")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(reply, "bulunmamaktadır") {
		t.Errorf("unexpected empty-catalog reply: %q", reply)
	}
}

func TestRespond_RecommendationsFilterAllergens(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{
		product("Künefe", "95.00", withAllergens("gluten", "laktoz")),
		product("Adana Kebap", "185.00"),
		product("Baklava", "80.00", withAllergens("gluten", "fıstık")),
	}}
	svc := NewService(catalog, logger.New("test"))

	reply, err := svc.Respond(context.Background(), "Gluten alerjim var, ne önerirsin?")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if strings.Contains(reply, "Künefe") || strings.Contains(reply, "Baklava") {
		t.Errorf("reply includes gluten products: %q", reply)
	}
	if !strings.Contains(reply, "Adana Kebap") {
		t.Errorf("reply missing safe product: %q", reply)
	}
}

func TestRespond_Keywords(t *testing.T) {
	svc := NewService(&fakeCatalog{}, logger.New("test"))

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"price question", "Bu ne kadar?", "fiyat"},
		{"menu question", "Menüyü görebilir miyim?", "menü"},
		{"fallback", "merhaba", "yardımcı"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.Respond(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("Respond() error = %v", err)
			}
			if !strings.Contains(strings.ToLower(reply), tt.want) {
				t.Errorf("Respond(%q) = %q, want mention of %q", tt.message, reply, tt.want)
			}
		})
	}
}

func TestRespond_EmptyMessage(t *testing.T) {
	svc := NewService(&fakeCatalog{}, logger.New("test"))

	if _, err := svc.Respond(context.Background(), "  "); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Respond(blank) error = %v, want ErrInvalidArgument", err)
	}
}

func TestRespond_CatalogFailure(t *testing.T) {
	svc := NewService(&fakeCatalog{err: errors.New("db down")}, logger.New("test"))

	if _, err := svc.Respond(context.Background(), "vegan"); err == nil {
		t.Error("expected error when catalog is unavailable")
	}
}
