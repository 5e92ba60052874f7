package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/models"
	"cardfinder/internal/services"
)

// searchRequest is a parsed search command line
type searchRequest struct {
	query       string
	kinds       models.InstrumentKindSet
	showExpired bool
}

func parseKinds(csv string) (models.InstrumentKindSet, error) {
	kinds, err := models.ParseInstrumentKinds(csv)
	if err != nil {
		return nil, apperrors.New(apperrors.SearchInvalidKinds, apperrors.WithDetails(err.Error()))
	}
	return kinds, nil
}

func (a *App) runSearch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("search", a.commands["search"].usage, stderr)
	kinds := fs.String("kinds", "", "comma separated instrument kinds to keep")
	expired := fs.Bool("expired", false, "include expired benefits")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}

	kindSet, err := parseKinds(*kinds)
	if err != nil {
		return err
	}

	_, err = a.search(ctx, stdout, searchRequest{query: joinArgs(fs.Args()), kinds: kindSet, showExpired: *expired}, nil)
	return err
}

// search dispatches one query and prints the ordered result
func (a *App) search(ctx context.Context, w io.Writer, req searchRequest, checks map[string]models.ConditionChecks) (*models.SearchResult, error) {
	result, err := a.dispatcher.Dispatch(ctx, req.query, models.SearchOptions{Kinds: req.kinds})
	if err != nil {
		return nil, err
	}

	owned := a.preferences.OwnedSet(ctx)
	result.Cards = services.OrderCards(result.Cards, owned, result.DetectedCategory)

	renderSearchHeader(w, result)
	views := services.BuildCardViews(result.Cards, services.CardViewOptions{
		Category:    result.DetectedCategory,
		ShowExpired: req.showExpired,
		Owned:       owned,
		Favorites:   a.preferences.FavoriteSet(ctx),
		Checks:      checks,
		Now:         a.now(),
	})
	if len(views) > 0 {
		fmt.Fprintln(w)
		renderCardViews(w, views, checks)
	}
	return result, nil
}

func (a *App) runCards(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("cards", a.commands["cards"].usage, stderr)
	bank := fs.String("bank", "", "only cards issued by this bank")
	sortBy := fs.String("sort", string(models.SortByBank), "sort order: bank or name")
	expired := fs.Bool("expired", false, "include expired benefits")
	banks := fs.Bool("banks", false, "list issuing banks instead of cards")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if fs.NArg() > 0 {
		return usageError("unexpected arguments: %v", fs.Args())
	}

	if *banks {
		for _, b := range a.browse.Banks() {
			fmt.Fprintln(stdout, b)
		}
		return nil
	}

	order, err := models.ParseSortBy(*sortBy)
	if err != nil {
		return usageError("%v", err)
	}

	owned := a.preferences.OwnedSet(ctx)
	cards := services.OrderCards(a.browse.AllCards(models.AllCardsQuery{Bank: *bank, SortBy: order}), owned, "")
	views := services.BuildCardViews(cards, services.CardViewOptions{
		ShowExpired: *expired,
		Owned:       owned,
		Favorites:   a.preferences.FavoriteSet(ctx),
		Now:         a.now(),
	})
	renderCardViews(stdout, views, nil)
	return nil
}

func (a *App) runMine(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("mine", a.commands["mine"].usage, stderr)
	view := fs.String("view", string(models.ViewModeAll), "all, owned or favorites")
	expired := fs.Bool("expired", false, "include expired benefits")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}

	mode, err := models.ParseViewMode(*view)
	if err != nil {
		return usageError("%v", err)
	}

	result := a.browse.MyCards(ctx, models.MyCardsQuery{View: mode})
	if len(result.Cards) == 0 {
		fmt.Fprintln(stdout, "No saved cards yet. Use `own` or `fav` to add some.")
		return nil
	}

	renderCategoryStats(stdout, result.CategoryStats)
	fmt.Fprintln(stdout)
	owned := a.preferences.OwnedSet(ctx)
	views := services.BuildCardViews(services.OrderCards(result.Cards, owned, ""), services.CardViewOptions{
		ShowExpired: *expired,
		Owned:       owned,
		Favorites:   a.preferences.FavoriteSet(ctx),
		Now:         a.now(),
	})
	renderCardViews(stdout, views, nil)
	return nil
}

func (a *App) runOwn(ctx context.Context, args []string, stdout, _ io.Writer) error {
	return a.toggle(ctx, args, stdout, "owned cards", a.preferences.ToggleOwned)
}

func (a *App) runFavorite(ctx context.Context, args []string, stdout, _ io.Writer) error {
	return a.toggle(ctx, args, stdout, "favorites", a.preferences.ToggleFavorite)
}

func (a *App) toggle(ctx context.Context, args []string, w io.Writer, list string, fn func(context.Context, string) (bool, error)) error {
	if len(args) != 1 {
		return usageError("expected exactly one card id")
	}
	card, ok := a.catalog.Card(args[0])
	if !ok {
		return apperrors.New(apperrors.CardNotFound, apperrors.WithDetails("id: "+args[0]))
	}

	added, err := fn(ctx, card.ID)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(w, "Added %s %s to %s.\n", card.Bank, card.Name, list)
	} else {
		fmt.Fprintf(w, "Removed %s %s from %s.\n", card.Bank, card.Name, list)
	}
	return nil
}

func (a *App) runHistory(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("history", a.commands["history"].usage, stderr)
	clearAll := fs.Bool("clear", false, "forget recent searches")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}

	if *clearAll {
		if err := a.preferences.ClearSearches(ctx); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Search history cleared.")
		return nil
	}
	renderHistory(stdout, a.preferences.GetRecentSearches(ctx))
	return nil
}

// lookupBenefit resolves a card id and a 1-based benefit number
func (a *App) lookupBenefit(id, number string) (models.Card, int, error) {
	card, ok := a.catalog.Card(id)
	if !ok {
		return models.Card{}, 0, apperrors.New(apperrors.CardNotFound, apperrors.WithDetails("id: "+id))
	}
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > len(card.Benefits) {
		return models.Card{}, 0, apperrors.New(apperrors.CardBenefitNotFound,
			apperrors.WithDetails(fmt.Sprintf("%s has %d benefit(s), got %q", card.ID, len(card.Benefits), number)))
	}
	return card, n - 1, nil
}

func hasCondition(b *models.Benefit, id string) bool {
	for _, c := range b.Conditions {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (a *App) runRate(_ context.Context, args []string, stdout, _ io.Writer) error {
	if len(args) < 2 {
		return usageError("expected a card id and a benefit number")
	}
	card, idx, err := a.lookupBenefit(args[0], args[1])
	if err != nil {
		return err
	}
	benefit := &card.Benefits[idx]

	checks := models.ConditionChecks{}
	for _, id := range args[2:] {
		if !hasCondition(benefit, id) {
			return apperrors.New(apperrors.CardUnknownCondition, apperrors.WithDetails("condition: "+id))
		}
		checks.Set(id, true)
	}

	result := services.CalculateRate(benefit, checks)
	p := result.Progress
	fmt.Fprintf(stdout, "%s %s / %s\n", card.Bank, card.Name, benefit.Category)
	fmt.Fprintf(stdout, "rate: %s%% (base %s%%, max %s%%, %s)\n",
		services.FormatRate(result.EffectiveRate),
		services.FormatRate(benefit.BaseRate),
		services.FormatRate(benefit.MaxRate),
		services.RateTierOf(result.EffectiveRate))
	if p.TotalConditions > 0 {
		fmt.Fprintf(stdout, "required %d/%d, bonus %d/%d\n", p.MetRequired, p.TotalRequired, p.MetOptional, p.TotalOptional)
	}
	for _, c := range benefit.Conditions {
		renderCondition(stdout, c, checks.IsChecked(c.ID))
	}
	return nil
}

func (a *App) runStats(ctx context.Context, args []string, stdout, _ io.Writer) error {
	if len(args) > 0 {
		return usageError("stats takes no arguments")
	}
	renderStats(stdout, a.browse.Stats(ctx))
	return nil
}

func ignoreHelp(err error) error {
	if errors.Is(err, errHelp) {
		return nil
	}
	return err
}
