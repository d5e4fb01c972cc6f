package reports

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smk-chits/smk-chits/internal/chit"
)

// Repository reads whole collections for report snapshots.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// AllMembers lists every member.
func (r *Repository) AllMembers(ctx context.Context) ([]chit.Member, error) {
	return queryAll(ctx, r.pool, `SELECT id, name, name_te, phone, address, id_proof, guarantor_name, guarantor_phone, created_at, updated_at FROM members`,
		func(rows pgx.Rows) (chit.Member, error) {
			var m chit.Member
			err := rows.Scan(&m.ID, &m.Name, &m.NameTE, &m.Phone, &m.Address, &m.IDProof, &m.GuarantorName, &m.GuarantorPhone, &m.CreatedAt, &m.UpdatedAt)
			return m, err
		})
}

// AllGroups lists every chit group.
func (r *Repository) AllGroups(ctx context.Context) ([]chit.Group, error) {
	return queryAll(ctx, r.pool, `SELECT id, name, chit_value, monthly_installment, member_count, duration_months, start_date, auction_day, commission_percent, status, created_at, updated_at FROM chit_groups`,
		func(rows pgx.Rows) (chit.Group, error) {
			var g chit.Group
			err := rows.Scan(&g.ID, &g.Name, &g.ChitValue, &g.MonthlyInstallment, &g.MemberCount, &g.DurationMonths, &g.StartDate, &g.AuctionDay, &g.CommissionPercent, &g.Status, &g.CreatedAt, &g.UpdatedAt)
			return g, err
		})
}

// AllTickets lists every ticket.
func (r *Repository) AllTickets(ctx context.Context) ([]chit.Ticket, error) {
	return queryAll(ctx, r.pool, `SELECT id, member_id, group_id, ticket_number, status, created_at FROM tickets`,
		func(rows pgx.Rows) (chit.Ticket, error) {
			var t chit.Ticket
			err := rows.Scan(&t.ID, &t.MemberID, &t.GroupID, &t.TicketNumber, &t.Status, &t.CreatedAt)
			return t, err
		})
}

// AllPayments lists every payment.
func (r *Repository) AllPayments(ctx context.Context) ([]chit.Payment, error) {
	return queryAll(ctx, r.pool, `SELECT id, ticket_id, member_id, group_id, auction_month, amount, payment_date, collection_type, receipt_number, notes, created_at FROM payments`,
		func(rows pgx.Rows) (chit.Payment, error) {
			var p chit.Payment
			err := rows.Scan(&p.ID, &p.TicketID, &p.MemberID, &p.GroupID, &p.AuctionMonth, &p.Amount, &p.PaymentDate, &p.CollectionType, &p.ReceiptNumber, &p.Notes, &p.CreatedAt)
			return p, err
		})
}

// AllAuctions lists every auction.
func (r *Repository) AllAuctions(ctx context.Context) ([]chit.Auction, error) {
	return queryAll(ctx, r.pool, `SELECT id, group_id, month_number, winner_ticket_id, winner_member_id, bid_amount, discount, foreman_commission, dividend_per_member, date, notes, created_at FROM auctions`,
		func(rows pgx.Rows) (chit.Auction, error) {
			var a chit.Auction
			err := rows.Scan(&a.ID, &a.GroupID, &a.MonthNumber, &a.WinnerTicketID, &a.WinnerMemberID, &a.BidAmount, &a.Discount, &a.ForemanCommission, &a.DividendPerMember, &a.Date, &a.Notes, &a.CreatedAt)
			return a, err
		})
}
