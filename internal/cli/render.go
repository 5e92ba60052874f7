package cli

import (
	"fmt"
	"io"
	"strings"

	"cardfinder/internal/models"
	"cardfinder/internal/services"
)

// renderCardViews prints cards with condition boxes ticked from checks, keyed by card id
func renderCardViews(w io.Writer, views []models.CardView, checks map[string]models.ConditionChecks) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No cards to show.")
		return
	}
	for i := range views {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCardView(w, &views[i], checks[views[i].Card.ID])
	}
}

func renderCardView(w io.Writer, view *models.CardView, checks models.ConditionChecks) {
	card := &view.Card

	var tags []string
	if view.IsOwned {
		tags = append(tags, "owned")
	}
	if view.IsFavorite {
		tags = append(tags, "favorite")
	}
	if !card.IsActive {
		tags = append(tags, "discontinued")
	}

	header := fmt.Sprintf("%s %s [%s]", card.Bank, card.Name, card.Kind.Label())
	if len(tags) > 0 {
		header += " (" + strings.Join(tags, ", ") + ")"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "  id: %s\n", card.ID)
	if len(card.PreviousNames) > 0 {
		fmt.Fprintf(w, "  formerly: %s\n", strings.Join(card.PreviousNames, ", "))
	}

	for i := range view.Benefits {
		renderBenefit(w, &view.Benefits[i], checks)
	}

	if card.Notes != "" {
		fmt.Fprintf(w, "  note: %s\n", card.Notes)
	}
	if card.OfficialURL != "" {
		fmt.Fprintf(w, "  site: %s\n", card.OfficialURL)
	}
}

func renderBenefit(w io.Writer, bv *models.BenefitView, checks models.ConditionChecks) {
	b := &bv.Benefit

	line := fmt.Sprintf("  #%d %s %s back (max %s%%)", bv.Index+1, b.Category, bv.Display, services.FormatRate(b.MaxRate))
	if bv.Expired {
		line += " (expired)"
	}
	fmt.Fprintln(w, line)

	if len(b.Conditions) > 0 && !bv.Expired {
		p := bv.Rate.Progress
		fmt.Fprintf(w, "     required %d/%d, bonus %d/%d\n", p.MetRequired, p.TotalRequired, p.MetOptional, p.TotalOptional)
	}
	for _, c := range b.Conditions {
		renderCondition(w, c, checks.IsChecked(c.ID))
	}

	if b.MonthlyLimit != nil {
		fmt.Fprintf(w, "     monthly cap: %s\n", b.MonthlyLimit.String())
	}
	if b.ValidFrom != nil || b.ValidTo != nil {
		fmt.Fprintf(w, "     valid: %s ~ %s\n", dateOrBlank(b.ValidFrom), dateOrBlank(b.ValidTo))
	}
	if b.Notes != "" {
		fmt.Fprintf(w, "     note: %s\n", b.Notes)
	}
	if b.ReferenceURL != "" {
		fmt.Fprintf(w, "     ref: %s\n", b.ReferenceURL)
	}
}

func renderCondition(w io.Writer, c models.Condition, checked bool) {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	kind := "bonus"
	if c.Required {
		kind = "required"
	}
	line := fmt.Sprintf("     %s %s (%s, %s)", box, c.Description, kind, c.ID)
	if !c.Value.IsZero() {
		line += ": " + c.Value.String()
	}
	fmt.Fprintln(w, line)
}

func dateOrBlank(d *models.Date) string {
	if d == nil {
		return "..."
	}
	return d.String()
}

func renderSearchHeader(w io.Writer, result *models.SearchResult) {
	switch {
	case result.HasDetectedCategory():
		fmt.Fprintf(w, "%q looks like %s: %d card(s)\n", result.Query, result.DetectedCategory, len(result.Cards))
	case len(result.Cards) == 0:
		fmt.Fprintf(w, "No cards found for %q.\n", result.Query)
	default:
		fmt.Fprintf(w, "%d card(s) match %q\n", len(result.Cards), result.Query)
	}
	if len(result.MatchedCategories) > 1 {
		fmt.Fprintf(w, "also matched: %s\n", strings.Join(result.MatchedCategories[1:], ", "))
	}
}

func renderCategoryStats(w io.Writer, stats []models.CategoryStat) {
	if len(stats) == 0 {
		return
	}
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s %d", s.Category, s.Count))
	}
	fmt.Fprintf(w, "top categories: %s\n", strings.Join(parts, ", "))
}

func renderStats(w io.Writer, stats models.CatalogStats) {
	fmt.Fprintf(w, "cards:      %d\n", stats.TotalCards)
	fmt.Fprintf(w, "benefits:   %d\n", stats.TotalBenefits)
	fmt.Fprintf(w, "categories: %d\n", stats.CategoryCount)
	fmt.Fprintf(w, "owned:      %d\n", stats.OwnedCount)
	fmt.Fprintf(w, "favorites:  %d\n", stats.FavoriteCount)
}

func renderHistory(w io.Writer, history []string) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No recent searches.")
		return
	}
	for i, q := range history {
		fmt.Fprintf(w, "%d. %s\n", i+1, q)
	}
}
