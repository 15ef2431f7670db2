package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	answers := data.Answers
	if answers == nil {
		answers = []int{}
	}
	encoded, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	err = r.insert(ctx, "quiz_results",
		[]string{"session_id", "topic", "score", "correct", "total", "tier", "answers"},
		[]any{data.SessionID, data.Topic, data.Score, data.Correct, data.Total, data.Tier, string(encoded)},
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error) {
	b := builder()
	t := b.Table("quiz_results")
	sel := b.Select(
		t.C("sequence"), t.C("timestamp"), t.C("session_id"), t.C("topic"),
		t.C("score"), t.C("correct"), t.C("total"), t.C("tier"), t.C("answers"),
	).
		From(t).
		OrderBy(entsql.Desc(t.C("sequence")))

	if opts.SessionID != "" {
		sel = sel.Where(entsql.EQ(t.C("session_id"), opts.SessionID))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var records []QuizResultRecord
	for rows.Next() {
		var (
			rec     QuizResultRecord
			ts      string
			answers string
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Topic,
			&rec.Score, &rec.Correct, &rec.Total, &rec.Tier, &answers); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		rec.Timestamp = parsed
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz results: %w", err)
	}
	return records, nil
}
