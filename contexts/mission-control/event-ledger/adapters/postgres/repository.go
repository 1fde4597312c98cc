package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"flexyfins/contexts/mission-control/event-ledger/domain/entities"
	domainerrors "flexyfins/contexts/mission-control/event-ledger/domain/errors"
	"flexyfins/contexts/mission-control/event-ledger/domain/services"
	"flexyfins/contexts/mission-control/event-ledger/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the ledger tables and the two indexes the insert and
// latest-per-mission paths depend on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&envelopeModel{}, &outboxModel{}); err != nil {
		return err
	}
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_mission_envelopes_dedup
			ON mission_envelopes (mission_id, event_type, proof_ref, ts DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_mission_envelopes_latest
			ON mission_envelopes (mission_id, ts DESC, id DESC)`,
	}
	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			return err
		}
	}
	return nil
}

// InsertEnvelope evaluates the dedup/finality decision and appends inside one
// transaction. A per-dedup-key advisory lock serializes concurrent inserts on
// the same (mission_id, event_type, proof_ref) tuple so two writers cannot
// both observe "no existing row" or race past a non-final latest row. The
// lock is released at commit.
func (r *Repository) InsertEnvelope(ctx context.Context, env entities.Envelope, event ports.AppendedEvent) (bool, error) {
	envelope, err := buildAppendedEnvelope(event)
	if err != nil {
		return false, err
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return false, err
	}
	metaJSON, err := marshalMeta(env.Meta)
	if err != nil {
		return false, err
	}

	inserted := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			env.DedupKey(),
		).Error; err != nil {
			return err
		}

		var latest *entities.Envelope
		var latestRow envelopeModel
		err := tx.
			Where("mission_id = ? AND event_type = ? AND proof_ref = ?",
				env.MissionID, env.EventType, env.ProofRef).
			Order("ts DESC").
			Order("id DESC").
			First(&latestRow).
			Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			existing, err := latestRow.toEntity()
			if err != nil {
				return err
			}
			latest = &existing
		}

		if services.DecideInsert(latest, env) != services.DecisionAppend {
			return nil
		}

		row := envelopeModel{
			Ts:        env.Ts.UTC(),
			MissionID: env.MissionID,
			EventType: env.EventType,
			Status:    env.Status,
			ProofRef:  env.ProofRef,
			MetaJSON:  metaJSON,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		if err := tx.Create(&outboxRow).Error; err != nil {
			if isUniqueViolation(err) {
				r.logger.Error("outbox event id collision",
					"event", "mission_ledger_outbox_id_collision",
					"module", "mission-control/event-ledger",
					"layer", "adapter",
					"event_id", event.EventID,
				)
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}

		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// SummaryCounts reads total and ok in one statement so both come from the
// same snapshot; counting them separately can observe a row committed in
// between and report total < ok.
func (r *Repository) SummaryCounts(ctx context.Context) (ports.Summary, error) {
	var row struct {
		Total int64
		OK    int64 `gorm:"column:ok"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status IN ?) AS ok
		FROM mission_envelopes`, entities.FinalStatusList()).
		Scan(&row).
		Error
	if err != nil {
		return ports.Summary{}, err
	}

	return ports.Summary{
		Total: int(row.Total),
		OK:    int(row.OK),
		Fail:  int(row.Total - row.OK),
	}, nil
}

// LatestPerMission is a groupwise-maximum query. DISTINCT ON with the
// (ts DESC, id DESC) order guarantees exactly one row per mission and a
// deterministic winner on timestamp collisions.
func (r *Repository) LatestPerMission(ctx context.Context, limit int) ([]entities.Envelope, error) {
	if limit < 1 {
		limit = 1
	}

	var rows []envelopeModel
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, ts, mission_id, event_type, status, proof_ref, meta_json
		FROM (
			SELECT DISTINCT ON (mission_id)
				id, ts, mission_id, event_type, status, proof_ref, meta_json
			FROM mission_envelopes
			ORDER BY mission_id, ts DESC, id DESC
		) latest
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Envelope, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Error("outbox ack for unknown row",
			"event", "mission_ledger_outbox_ack_missing",
			"module", "mission-control/event-ledger",
			"layer", "adapter",
			"outbox_id", outboxID,
		)
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

type envelopeModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Ts        time.Time `gorm:"column:ts;index"`
	MissionID string    `gorm:"column:mission_id"`
	EventType string    `gorm:"column:event_type"`
	Status    string    `gorm:"column:status"`
	ProofRef  string    `gorm:"column:proof_ref"`
	MetaJSON  []byte    `gorm:"column:meta_json;type:jsonb"`
}

func (envelopeModel) TableName() string {
	return "mission_envelopes"
}

func (m envelopeModel) toEntity() (entities.Envelope, error) {
	meta, err := unmarshalMeta(m.MetaJSON)
	if err != nil {
		return entities.Envelope{}, err
	}
	return entities.Envelope{
		Seq:       m.ID,
		Ts:        m.Ts.UTC(),
		MissionID: m.MissionID,
		EventType: m.EventType,
		Status:    m.Status,
		ProofRef:  m.ProofRef,
		Meta:      meta,
	}, nil
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "mission_ledger_outbox"
}

func (m outboxModel) toPort() ports.OutboxMessage {
	return ports.OutboxMessage{
		OutboxID:     m.OutboxID,
		EventType:    m.EventType,
		PartitionKey: m.PartitionKey,
		Payload:      append([]byte(nil), m.Payload...),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func marshalMeta(meta map[string]any) ([]byte, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	return json.Marshal(meta)
}

func unmarshalMeta(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func buildAppendedEnvelope(event ports.AppendedEvent) (ports.EventEnvelope, error) {
	data, err := json.Marshal(map[string]string{
		"mission_id": event.MissionID,
		"event_type": event.LedgerEvent,
		"status":     event.Status,
		"proof_ref":  event.ProofRef,
	})
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    "mission-event-ledger",
		SchemaVersion:    1,
		PartitionKeyPath: "mission_id",
		PartitionKey:     event.PartitionKey,
		Data:             data,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
