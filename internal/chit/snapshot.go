package chit

// Snapshot is a fully materialized view of the store's collections. The
// engine operates only on snapshots passed in by the caller; it never
// re-fetches mid-computation.
type Snapshot struct {
	Members  []Member
	Groups   []Group
	Tickets  []Ticket
	Payments []Payment
	Auctions []Auction
}

// MemberByID resolves a member reference.
func (s Snapshot) MemberByID(id string) (Member, bool) {
	for _, m := range s.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// GroupByID resolves a group reference.
func (s Snapshot) GroupByID(id string) (Group, bool) {
	for _, g := range s.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// TicketByID resolves a ticket reference.
func (s Snapshot) TicketByID(id string) (Ticket, bool) {
	for _, t := range s.Tickets {
		if t.ID == id {
			return t, true
		}
	}
	return Ticket{}, false
}

// ActiveGroupIDs returns the set of groups currently in play.
func (s Snapshot) ActiveGroupIDs() map[string]bool {
	ids := make(map[string]bool, len(s.Groups))
	for _, g := range s.Groups {
		if g.Status == GroupActive {
			ids[g.ID] = true
		}
	}
	return ids
}
