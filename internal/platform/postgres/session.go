package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/pig-api/internal/platform/logger"
	"github.com/phrazzld/pig-api/internal/redact"
	"github.com/phrazzld/pig-api/internal/store"
)

// Stored routine names.
const (
	routineAPIKeyGet    = "apikey_get"
	routinePeopleGet    = "people_get"
	routinePersonGet    = "person_get"
	routinePersonUpdate = "person_update"
	routineThingsGet    = "things_get"
	routineThingGet     = "thing_get"
	routineThingAdd     = "thing_add"
	routineThingUpdate  = "thing_update"
	routineThingDelete  = "thing_delete"
)

// querier is the part of *pgxpool.Conn a session needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session is one pooled connection bound to a single request.
type Session struct {
	conn    querier
	release func()
	once    sync.Once
	schema  string
	logger  *slog.Logger
}

// Ensure Session implements store.Session interface
var _ store.Session = (*Session)(nil)

func newSession(conn querier, release func(), schema string, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	if release == nil {
		release = func() {}
	}
	return &Session{
		conn:    conn,
		release: release,
		schema:  schema,
		logger:  log,
	}
}

// Release returns the connection to the pool. Later calls are no-ops.
func (s *Session) Release() {
	s.once.Do(s.release)
}

// routineQuery builds the call statement for routine with n positional
// parameters. Routine and schema names are quoted as identifiers.
func routineQuery(schema, routine string, n int) string {
	ident := pgx.Identifier{routine}
	if schema != "" {
		ident = pgx.Identifier{schema, routine}
	}

	params := make([]string, n)
	for i := range params {
		params[i] = fmt.Sprintf("$%d", i+1)
	}

	return fmt.Sprintf("SELECT status, js FROM %s(%s)", ident.Sanitize(), strings.Join(params, ", "))
}

// call runs one stored routine and returns its result unmodified, after
// checking that the status is a legal HTTP status and the payload is JSON.
func (s *Session) call(ctx context.Context, routine string, args ...any) (store.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("routine", routine))

	var (
		status  int
		payload []byte
	)

	start := time.Now()
	err := s.conn.QueryRow(ctx, routineQuery(s.schema, routine, len(args)), args...).Scan(&status, &payload)
	elapsed := time.Since(start)

	if err != nil {
		attrs := append(errorAttrs(err),
			slog.String("error", redact.Error(err)),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
		log.LogAttrs(ctx, slog.LevelWarn, "routine call failed", attrs...)
		return store.Result{}, MapError(routine, err)
	}

	if !store.ValidStatus(status) {
		log.Error("routine returned invalid http status", slog.Int("status", status))
		return store.Result{}, store.NewGatewayError(
			routine,
			fmt.Errorf("%w: %d", store.ErrInvalidStatus, status),
		)
	}

	if payload == nil || !json.Valid(payload) {
		log.Error("routine returned invalid json payload",
			slog.Int("status", status),
			slog.Int("payload_bytes", len(payload)))
		return store.Result{}, store.NewGatewayError(routine, store.ErrInvalidPayload)
	}

	log.Debug("routine call completed",
		slog.Int("status", status),
		slog.Int64("duration_ms", elapsed.Milliseconds()))

	return store.Result{Status: status, Payload: json.RawMessage(payload)}, nil
}

// ResolveAPIKey implements store.Session.ResolveAPIKey.
// Status 200 means found and the payload must carry a positive person_id.
func (s *Session) ResolveAPIKey(ctx context.Context, key string) (int, bool, error) {
	res, err := s.call(ctx, routineAPIKeyGet, key)
	if err != nil {
		return 0, false, err
	}
	if res.Status != 200 {
		return 0, false, nil
	}

	var found struct {
		PersonID int `json:"person_id"`
	}
	if err := json.Unmarshal(res.Payload, &found); err != nil {
		return 0, false, store.NewGatewayError(routineAPIKeyGet, fmt.Errorf("%w: %v", store.ErrInvalidPayload, err))
	}
	if found.PersonID <= 0 {
		return 0, false, store.NewGatewayError(
			routineAPIKeyGet,
			fmt.Errorf("%w: person_id missing or not positive", store.ErrInvalidPayload),
		)
	}

	return found.PersonID, true, nil
}

// PeopleGet implements store.Session.PeopleGet.
func (s *Session) PeopleGet(ctx context.Context) (store.Result, error) {
	return s.call(ctx, routinePeopleGet)
}

// PersonGet implements store.Session.PersonGet.
func (s *Session) PersonGet(ctx context.Context, personID int) (store.Result, error) {
	return s.call(ctx, routinePersonGet, personID)
}

// PersonUpdate implements store.Session.PersonUpdate.
func (s *Session) PersonUpdate(ctx context.Context, personID int, name string) (store.Result, error) {
	return s.call(ctx, routinePersonUpdate, personID, name)
}

// ThingsGet implements store.Session.ThingsGet.
func (s *Session) ThingsGet(ctx context.Context, personID int) (store.Result, error) {
	return s.call(ctx, routineThingsGet, personID)
}

// ThingGet implements store.Session.ThingGet.
func (s *Session) ThingGet(ctx context.Context, personID, thingID int) (store.Result, error) {
	return s.call(ctx, routineThingGet, personID, thingID)
}

// ThingAdd implements store.Session.ThingAdd.
func (s *Session) ThingAdd(ctx context.Context, personID int, name string) (store.Result, error) {
	return s.call(ctx, routineThingAdd, personID, name)
}

// ThingUpdate implements store.Session.ThingUpdate.
func (s *Session) ThingUpdate(ctx context.Context, personID, thingID int, name string) (store.Result, error) {
	return s.call(ctx, routineThingUpdate, personID, thingID, name)
}

// ThingDelete implements store.Session.ThingDelete.
func (s *Session) ThingDelete(ctx context.Context, personID, thingID int) (store.Result, error) {
	return s.call(ctx, routineThingDelete, personID, thingID)
}
