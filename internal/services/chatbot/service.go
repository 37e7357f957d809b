// Package chatbot implements the rule-based menu assistant. It matches
// keywords against the product catalog; there is no language model behind
// it.
package chatbot

import (
	"context"
	"fmt"
	"strings"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// ProductCatalog is the read-only slice of the menu the assistant needs.
type ProductCatalog interface {
	ListAvailableProducts(ctx context.Context) ([]models.Product, error)
}

// Service answers menu questions with keyword rules.
type Service struct {
	catalog ProductCatalog
	logger  *logger.Logger
}

// NewService creates the chatbot service.
func NewService(catalog ProductCatalog, log *logger.Logger) *Service {
	return &Service{catalog: catalog, logger: log}
}

// Respond returns a reply for the user's message.
func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message cannot be empty", models.ErrInvalidArgument)
	}

	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "vegan", "vejetaryen"):
		return s.veganSuggestions(ctx)
	case containsAny(lower, "fiyat", "ne kadar", "kaç"):
		return "Ürün fiyatlarını görmek için menü sayfasındaki ürün kartlarına bakabilirsiniz.", nil
	case containsAny(lower, "öner", "tavsiye", "ne yiyebilirim", "ne içebilirim"):
		return s.recommendations(ctx, lower)
	case containsAny(lower, "menü", "menu"):
		return "Menümüzü menü sayfasından inceleyebilirsiniz. Öneri isterseniz sorabilirsiniz.", nil
	default:
		return "Size nasıl yardımcı olabilirim? Menü, öneri veya fiyat hakkında sorabilirsiniz.", nil
	}
}

func (s *Service) veganSuggestions(ctx context.Context) (string, error) {
	products, err := s.catalog.ListAvailableProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("load catalog: %w", err)
	}

	var lines []string
	for _, p := range products {
		if p.IsVegan || p.IsVegetarian {
			lines = append(lines, fmt.Sprintf("• %s - %s ₺", p.Name, p.Price.StringFixed(2)))
		}
		if len(lines) == 5 {
			break
		}
	}
	if len(lines) == 0 {
		return "Üzgünüm, şu anda menüde vegan/vejetaryen ürün bulunmamaktadır.", nil
	}
	return "Vegan/Vejetaryen ürünlerimiz:\n" + strings.Join(lines, "\n"), nil
}

// recommendations lists products, filtering out anything carrying an
// allergen the user mentioned.
func (s *Service) recommendations(ctx context.Context, lower string) (string, error) {
	products, err := s.catalog.ListAvailableProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("load catalog: %w", err)
	}

	restricted := mentionedAllergens(lower)

	var lines []string
	for _, p := range products {
		if hasRestrictedAllergen(p.Allergens, restricted) {
			continue
		}
		line := fmt.Sprintf("• %s - %s ₺", p.Name, p.Price.StringFixed(2))
		if p.PreparationTime > 0 {
			line += fmt.Sprintf(" (⏱️ %d dakika)", p.PreparationTime)
		}
		lines = append(lines, line)
		if len(lines) == 8 {
			break
		}
	}
	if len(lines) == 0 {
		return "Üzgünüm, kriterlerinize uygun ürün bulamadım.", nil
	}
	return "Önerilerimiz:\n" + strings.Join(lines, "\n"), nil
}

func mentionedAllergens(lower string) []string {
	var restricted []string
	if containsAny(lower, "laktoz", "süt") {
		restricted = append(restricted, "laktoz", "süt", "dairy")
	}
	if strings.Contains(lower, "gluten") {
		restricted = append(restricted, "gluten")
	}
	if containsAny(lower, "fıstık", "yer fıstığı") {
		restricted = append(restricted, "fıstık", "peanut")
	}
	if strings.Contains(lower, "yumurta") {
		restricted = append(restricted, "yumurta", "egg")
	}
	return restricted
}

func hasRestrictedAllergen(allergens, restricted []string) bool {
	for _, a := range allergens {
		la := strings.ToLower(a)
		for _, r := range restricted {
			if strings.Contains(la, r) {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
