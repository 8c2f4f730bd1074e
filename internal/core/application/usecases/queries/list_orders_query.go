package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps the row offset (page-1)*limit well inside int range.
	MaxPage = 100_000
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersParams is the raw input of the staff order list. Zero values mean
// "not set": Page and Limit fall back to DefaultPage and DefaultLimit, and empty
// strings or nil dates disable the corresponding filter. Search matches a
// substring of the order code or the customer name, ignoring case.
type ListOrdersParams struct {
	Page          int
	Limit         int
	From          *time.Time
	To            *time.Time
	Status        string
	PaymentMethod string
	Search        string
}

// ListOrdersQuery is a validated page request over all orders. From and To
// select whole UTC days and are both inclusive.
type ListOrdersQuery struct {
	page          int
	limit         int
	from          *time.Time
	toExclusive   *time.Time
	status        *order.Status
	paymentMethod *order.PaymentMethod
	search        string

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(p ListOrdersParams) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		page:   p.Page,
		limit:  p.Limit,
		search: strings.TrimSpace(p.Search),
		guard:  guard.NewConstructorGuard(),
	}
	if q.page == 0 {
		q.page = DefaultPage
	}
	if q.limit == 0 {
		q.limit = DefaultLimit
	}

	var problems []error
	if q.page < 1 || q.page > MaxPage {
		problems = append(problems, errs.NewValueIsOutOfRangeError("page", p.Page, 1, MaxPage))
	}
	if q.limit < 1 || q.limit > MaxLimit {
		problems = append(problems, errs.NewValueIsOutOfRangeError("limit", p.Limit, 1, MaxLimit))
	}

	if p.From != nil {
		from := startOfDay(*p.From)
		q.from = &from
	}
	if p.To != nil {
		to := startOfDay(*p.To).AddDate(0, 0, 1)
		q.toExclusive = &to
	}
	if q.from != nil && q.toExclusive != nil && !q.from.Before(*q.toExclusive) {
		problems = append(problems, errs.NewValueIsInvalidError("from"))
	}

	if p.Status != "" {
		status, err := order.ParseStatus(p.Status)
		if err != nil {
			problems = append(problems, err)
		} else {
			q.status = &status
		}
	}
	if p.PaymentMethod != "" {
		method, err := order.ParsePaymentMethod(p.PaymentMethod)
		if err != nil {
			problems = append(problems, err)
		} else {
			q.paymentMethod = &method
		}
	}

	if err := errors.Join(problems...); err != nil {
		return ListOrdersQuery{}, err
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Search is the trimmed text matched against order codes and customer names.
func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q ListOrdersQuery) filter() orderFilter {
	var f orderFilter
	if q.from != nil {
		f.add("created_at >= ?", *q.from)
	}
	if q.toExclusive != nil {
		f.add("created_at < ?", *q.toExclusive)
	}
	if q.status != nil {
		f.add("status = ?", int(*q.status))
	}
	if q.paymentMethod != nil {
		f.add("payment_method = ?", q.paymentMethod.String())
	}
	if q.search != "" {
		pattern := "%" + escapeLike(q.search) + "%"
		f.add("(order_code ILIKE ? OR customer_name ILIKE ?)", pattern, pattern)
	}
	return f
}

// ListOrdersQueryResponse is one page of orders.
type ListOrdersQueryResponse struct {
	Orders      []OrderView
	CurrentPage int
	TotalPages  int
	Total       int64
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
