package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, "session_events",
		[]string{"session_id", "action", "topic", "slide_count"},
		[]any{data.SessionID, data.Action, data.Topic, data.SlideCount},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountSessions(ctx context.Context) (int, error) {
	b := builder()
	t := b.Table("session_events")
	query, args := b.Select(entsql.Count("*")).
		From(t).
		Where(entsql.EQ(t.C("action"), "start")).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan session count: %w", err)
		}
	}
	return n, rows.Err()
}
