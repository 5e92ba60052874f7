package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"

	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/models"
	"cardfinder/internal/services"
)

const shellHelp = `commands:
  search <query>               find cards for a merchant, category, card or bank
  check <card-id> <cond-id>    mark a condition as met on a listed card
  uncheck <card-id> <cond-id>  clear a condition on a listed card
  show                         print the last listing again
  own <card-id>                toggle an owned card
  fav <card-id>                toggle a favorite card
  history                      recent searches
  kinds [csv|all]              show or set the instrument kind filter
  expired                      toggle showing expired benefits
  metrics                      print collected metrics
  help                         this text
  quit                         leave the shell`

// shellSession is the state one interactive session keeps between lines
type shellSession struct {
	kinds       models.InstrumentKindSet
	showExpired bool
	last        *models.SearchResult
	// checks is keyed by card id and cleared whenever a new listing is shown
	checks map[string]models.ConditionChecks
}

func (a *App) runShell(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return usageError("shell takes no arguments")
	}

	session := &shellSession{
		kinds:  models.InstrumentKindSet{},
		checks: map[string]models.ConditionChecks{},
	}

	fmt.Fprintln(stdout, "Type a merchant or category to search, or `help`.")
	scanner := bufio.NewScanner(a.stdin)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if name == "quit" || name == "exit" {
			return nil
		}
		err := a.guard(name, func() error { return a.shellCommand(ctx, session, name, rest, stdout) })
		if err != nil {
			a.reportError(stderr, err)
		}
	}
}

func (a *App) shellCommand(ctx context.Context, s *shellSession, name, rest string, w io.Writer) error {
	switch name {
	case "search", "s":
		s.checks = map[string]models.ConditionChecks{}
		result, err := a.search(ctx, w, searchRequest{query: rest, kinds: s.kinds, showExpired: s.showExpired}, s.checks)
		if err != nil {
			return err
		}
		s.last = result
		return nil
	case "check":
		return a.shellCheck(ctx, s, rest, true, w)
	case "uncheck":
		return a.shellCheck(ctx, s, rest, false, w)
	case "show":
		return a.shellShow(ctx, s, w)
	case "own":
		return a.toggle(ctx, strings.Fields(rest), w, "owned cards", a.preferences.ToggleOwned)
	case "fav":
		return a.toggle(ctx, strings.Fields(rest), w, "favorites", a.preferences.ToggleFavorite)
	case "history":
		renderHistory(w, a.preferences.GetRecentSearches(ctx))
		return nil
	case "kinds":
		return a.shellKinds(s, rest, w)
	case "expired":
		s.showExpired = !s.showExpired
		fmt.Fprintf(w, "expired benefits: %s\n", onOff(s.showExpired))
		return nil
	case "metrics":
		return a.shellMetrics(w)
	case "help", "?":
		fmt.Fprintln(w, shellHelp)
		return nil
	}
	return usageError("unknown shell command %q, try help", name)
}

func (a *App) shellCheck(ctx context.Context, s *shellSession, rest string, checked bool, w io.Writer) error {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return usageError("expected a card id and a condition id")
	}
	cardID, conditionID := fields[0], fields[1]

	card, ok := s.listed(cardID)
	if !ok {
		return apperrors.New(apperrors.CardNotFound, apperrors.WithDetails("not in the current listing: "+cardID))
	}
	if !cardHasCondition(&card, conditionID) {
		return apperrors.New(apperrors.CardUnknownCondition, apperrors.WithDetails("condition: "+conditionID))
	}

	checks, ok := s.checks[cardID]
	if !ok {
		checks = models.ConditionChecks{}
		s.checks[cardID] = checks
	}
	checks.Set(conditionID, checked)

	views := services.BuildCardViews([]models.Card{card}, services.CardViewOptions{
		Category:    s.last.DetectedCategory,
		ShowExpired: s.showExpired,
		Owned:       a.preferences.OwnedSet(ctx),
		Favorites:   a.preferences.FavoriteSet(ctx),
		Checks:      s.checks,
		Now:         a.now(),
	})
	renderCardViews(w, views, s.checks)
	return nil
}

func (a *App) shellShow(ctx context.Context, s *shellSession, w io.Writer) error {
	if s.last == nil {
		fmt.Fprintln(w, "Nothing searched yet.")
		return nil
	}
	renderSearchHeader(w, s.last)
	views := services.BuildCardViews(s.last.Cards, services.CardViewOptions{
		Category:    s.last.DetectedCategory,
		ShowExpired: s.showExpired,
		Owned:       a.preferences.OwnedSet(ctx),
		Favorites:   a.preferences.FavoriteSet(ctx),
		Checks:      s.checks,
		Now:         a.now(),
	})
	if len(views) > 0 {
		fmt.Fprintln(w)
		renderCardViews(w, views, s.checks)
	}
	return nil
}

func (a *App) shellKinds(s *shellSession, rest string, w io.Writer) error {
	switch rest {
	case "":
	case "all":
		s.kinds = models.InstrumentKindSet{}
	default:
		kinds, err := parseKinds(rest)
		if err != nil {
			return err
		}
		s.kinds = kinds
	}

	if !s.kinds.IsRestrictive() {
		fmt.Fprintln(w, "kinds: all")
		return nil
	}
	labels := make([]string, 0, len(s.kinds))
	for _, k := range s.kinds.Kinds() {
		labels = append(labels, string(k))
	}
	fmt.Fprintf(w, "kinds: %s\n", strings.Join(labels, ","))
	return nil
}

func (a *App) shellMetrics(w io.Writer) error {
	if a.gatherer == nil {
		fmt.Fprintln(w, "Metrics are not enabled.")
		return nil
	}
	families, err := a.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			fmt.Fprintf(w, "%s%s %s\n", f.GetName(), formatLabels(m.GetLabel()), formatValue(f.GetType(), m))
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

func formatValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "n/a"
	}
}

// listed finds a card in the last search listing
func (s *shellSession) listed(id string) (models.Card, bool) {
	if s.last == nil {
		return models.Card{}, false
	}
	for _, c := range s.last.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.Card{}, false
}

func cardHasCondition(card *models.Card, conditionID string) bool {
	for i := range card.Benefits {
		if hasCondition(&card.Benefits[i], conditionID) {
			return true
		}
	}
	return false
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
