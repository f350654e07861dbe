package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// likeEscaper makes user text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

var listingSortColumns = map[domain.ListingSortField]string{
	domain.SortByFaceValue:  "face_value",
	domain.SortByCreatedAt:  "created_at",
	domain.SortByBudgetYear: "budget_year",
}

// listingQuery accumulates a WHERE clause with positional arguments.
type listingQuery struct {
	conds []string
	args  []any
}

func (q *listingQuery) add(cond string, args ...any) {
	for _, a := range args {
		q.args = append(q.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(q.args)), 1)
	}
	q.conds = append(q.conds, cond)
}

func (q *listingQuery) where() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// scopePredicate appends the visibility predicate. It is always the first condition so
// filters can only narrow it.
func (q *listingQuery) scopePredicate(scope domain.VisibilityScope) {
	switch {
	case scope.All:
		return
	case scope.IncludeAvailable:
		q.add("(cedente_id = ? OR status = ?)", scope.OwnerID, string(domain.ListingDisponivel))
	default:
		q.add("cedente_id = ?", scope.OwnerID)
	}
}

func buildListingQuery(scope domain.VisibilityScope, f domain.ListingFilter) *listingQuery {
	q := &listingQuery{}
	q.scopePredicate(scope)

	if f.Status != nil {
		q.add("status = ?", string(*f.Status))
	}
	if f.CourtID != nil {
		q.add("court_id = ?", *f.CourtID)
	}
	if f.DebtorID != nil {
		q.add("debtor_id = ?", *f.DebtorID)
	}
	if f.Nature != nil {
		q.add("nature = ?", string(*f.Nature))
	}
	if f.BudgetYear != nil {
		q.add("budget_year = ?", *f.BudgetYear)
	}
	if f.BudgetYearGTE != nil {
		q.add("budget_year >= ?", *f.BudgetYearGTE)
	}
	if f.BudgetYearLTE != nil {
		q.add("budget_year <= ?", *f.BudgetYearLTE)
	}
	if f.FaceValueGTE != nil {
		q.add("face_value >= ?", *f.FaceValueGTE)
	}
	if f.FaceValueLTE != nil {
		q.add("face_value <= ?", *f.FaceValueLTE)
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		q.add("(process_number ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	return q
}

func listingOrderBy(f domain.ListingFilter) string {
	col, ok := listingSortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir + ", listing_id"
}
