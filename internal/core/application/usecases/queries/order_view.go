package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model of an order with its items and status history.
type OrderView struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	CustomerName  string
	OrderCode     string
	Items         []OrderItemView
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Status        string
	StatusLog     []StatusLogView
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItemView struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// StatusLogView is one audit entry. ChangedBy is nil for system changes.
type StatusLogView struct {
	Status    string
	ChangedAt time.Time
	ChangedBy *kernel.UUID
}

// orderFilter is a WHERE clause over the orders table and its arguments.
type orderFilter struct {
	conditions []string
	args       []any
}

func (f *orderFilter) add(condition string, args ...any) {
	f.conditions = append(f.conditions, condition)
	f.args = append(f.args, args...)
}

func (f orderFilter) where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conditions, " AND ")
}

// orderReader assembles OrderViews from orders, order_items and order_status_log.
type orderReader struct {
	db *gorm.DB
}

func (r orderReader) count(ctx context.Context, filter orderFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM orders"+filter.where(), filter.args...).Scan(&total).Error
	return total, err
}

// find returns orders matching filter, newest first. A limit of zero means no limit.
func (r orderReader) find(ctx context.Context, filter orderFilter, limit, offset int) ([]OrderView, error) {
	sqlText := `
		SELECT
			id,
			user_id,
			customer_name,
			order_code,
			payment_method,
			total_amount,
			status,
			delivered_at,
			created_at,
			updated_at
		FROM orders` + filter.where() + `
		ORDER BY created_at DESC, id`
	args := append([]any{}, filter.args...)
	if limit > 0 {
		sqlText += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := r.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			view        OrderView
			id, userID  uuid.UUID
			status      int
			deliveredAt sql.NullTime
		)
		err = rows.Scan(
			&id,
			&userID,
			&view.CustomerName,
			&view.OrderCode,
			&view.PaymentMethod,
			&view.TotalAmount,
			&status,
			&deliveredAt,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		view.Status = order.Status(status).String()
		if deliveredAt.Valid {
			at := deliveredAt.Time
			view.DeliveredAt = &at
		}
		view.Items = make([]OrderItemView, 0)
		view.StatusLog = make([]StatusLogView, 0)

		views = append(views, view)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	index := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	if err = r.attachItems(ctx, ids, index, views); err != nil {
		return nil, err
	}
	if err = r.attachStatusLog(ctx, ids, index, views); err != nil {
		return nil, err
	}

	return views, nil
}

func (r orderReader) attachItems(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, views []OrderView) error {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.product_id,
			COALESCE(p.name, ''),
			oi.quantity,
			oi.unit_price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item             OrderItemView
			orderID, product uuid.UUID
		)
		if err = rows.Scan(&orderID, &product, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(product[:]); err != nil {
			return err
		}
		i := index[orderID]
		views[i].Items = append(views[i].Items, item)
	}

	return rows.Err()
}

func (r orderReader) attachStatusLog(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, views []OrderView) error {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			changed_at,
			changed_by
		FROM order_status_log
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     StatusLogView
			orderID   uuid.UUID
			status    int
			changedBy uuid.NullUUID
		)
		if err = rows.Scan(&orderID, &status, &entry.ChangedAt, &changedBy); err != nil {
			return err
		}
		entry.Status = order.Status(status).String()
		if changedBy.Valid {
			by, idErr := kernel.UUIDFromBytes(changedBy.UUID[:])
			if idErr != nil {
				return idErr
			}
			entry.ChangedBy = &by
		}
		i := index[orderID]
		views[i].StatusLog = append(views[i].StatusLog, entry)
	}

	return rows.Err()
}
