package core

import "strings"

// Variant is the visual treatment derived from a free-text category.
type Variant string

const (
	VariantWedding Variant = "wedding"
	VariantMeal    Variant = "meal"
	VariantTour    Variant = "tour"
	VariantFree    Variant = "free"
	VariantOther   Variant = "other"
)

var variantKeywords = []struct {
	variant  Variant
	keywords []string
	icon     string
}{
	{VariantWedding, []string{"wedding"}, "💍"},
	{VariantMeal, []string{"meal", "dinner", "lunch", "breakfast"}, "🍽️"},
	{VariantTour, []string{"tour", "activity", "sight"}, "🏛️"},
	{VariantFree, []string{"free"}, "🏖️"},
}

const defaultIcon = "🗓️"

func matchVariant(category string) (Variant, string, bool) {
	c := strings.ToLower(category)
	for _, vk := range variantKeywords {
		for _, kw := range vk.keywords {
			if strings.Contains(c, kw) {
				return vk.variant, vk.icon, true
			}
		}
	}
	return "", "", false
}

// ClassifyCategory returns the card variant. Unmatched categories are "other".
func ClassifyCategory(category string) Variant {
	if v, _, ok := matchVariant(category); ok {
		return v
	}
	return VariantOther
}

// BadgeVariant returns the badge variant. Unmatched categories get the
// "free" badge, unlike cards which fall back to "other".
func BadgeVariant(category string) Variant {
	if v, _, ok := matchVariant(category); ok {
		return v
	}
	return VariantFree
}

// CategoryIcon returns the emoji shown in the badge.
func CategoryIcon(category string) string {
	if _, icon, ok := matchVariant(category); ok {
		return icon
	}
	return defaultIcon
}
