package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/pig-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow implements pgx.Row with a canned status/payload or error.
type fakeRow struct {
	status  int
	payload []byte
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.status
	*dest[1].(*[]byte) = r.payload
	return nil
}

// fakeConn records the statements it receives.
type fakeConn struct {
	row     fakeRow
	queries []string
	args    [][]any
}

func (c *fakeConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.queries = append(c.queries, sql)
	c.args = append(c.args, args)
	return c.row
}

func newTestSession(row fakeRow) (*Session, *fakeConn) {
	conn := &fakeConn{row: row}
	return newSession(conn, nil, DefaultSchema, nil), conn
}

func TestRoutineQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `SELECT status, js FROM "pig"."people_get"()`, routineQuery("pig", "people_get", 0))
	assert.Equal(t, `SELECT status, js FROM "pig"."thing_update"($1, $2, $3)`, routineQuery("pig", "thing_update", 3))
	assert.Equal(t, `SELECT status, js FROM "apikey_get"($1)`, routineQuery("", "apikey_get", 1))
	assert.Equal(t, `SELECT status, js FROM "odd""schema"."person_get"($1)`, routineQuery(`odd"schema`, "person_get", 1))
}

func TestSessionOperations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		name    string
		call    func(s *Session) (store.Result, error)
		routine string
		args    []any
	}{
		{"people_get", func(s *Session) (store.Result, error) { return s.PeopleGet(ctx) }, "people_get", nil},
		{"person_get", func(s *Session) (store.Result, error) { return s.PersonGet(ctx, 42) }, "person_get", []any{42}},
		{"person_update", func(s *Session) (store.Result, error) { return s.PersonUpdate(ctx, 1, "Ada") }, "person_update", []any{1, "Ada"}},
		{"things_get", func(s *Session) (store.Result, error) { return s.ThingsGet(ctx, 1) }, "things_get", []any{1}},
		{"thing_get", func(s *Session) (store.Result, error) { return s.ThingGet(ctx, 1, 7) }, "thing_get", []any{1, 7}},
		{"thing_add", func(s *Session) (store.Result, error) { return s.ThingAdd(ctx, 1, "lamp") }, "thing_add", []any{1, "lamp"}},
		{"thing_update", func(s *Session) (store.Result, error) { return s.ThingUpdate(ctx, 1, 7, "desk") }, "thing_update", []any{1, 7, "desk"}},
		{"thing_delete", func(s *Session) (store.Result, error) { return s.ThingDelete(ctx, 1, 7) }, "thing_delete", []any{1, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, conn := newTestSession(fakeRow{status: 200, payload: []byte(`{"id":1}`)})

			res, err := tt.call(s)
			require.NoError(t, err)
			assert.Equal(t, 200, res.Status)
			assert.JSONEq(t, `{"id":1}`, string(res.Payload))

			require.Len(t, conn.queries, 1, "exactly one call per operation")
			assert.Equal(t, routineQuery(DefaultSchema, tt.routine, len(tt.args)), conn.queries[0])
			if tt.args == nil {
				assert.Empty(t, conn.args[0])
			} else {
				assert.Equal(t, tt.args, conn.args[0])
			}
		})
	}
}

func TestSessionPassesStatusThrough(t *testing.T) {
	t.Parallel()

	for _, status := range []int{100, 201, 404, 409, 500, 599} {
		s, _ := newTestSession(fakeRow{status: status, payload: []byte(`{}`)})
		res, err := s.PersonGet(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, status, res.Status)
	}
}

func TestSessionRejectsInvalidResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  fakeRow
		want error
	}{
		{"status zero", fakeRow{status: 0, payload: []byte(`{}`)}, store.ErrInvalidStatus},
		{"status too low", fakeRow{status: 99, payload: []byte(`{}`)}, store.ErrInvalidStatus},
		{"status too high", fakeRow{status: 600, payload: []byte(`{}`)}, store.ErrInvalidStatus},
		{"negative status", fakeRow{status: -1, payload: []byte(`{}`)}, store.ErrInvalidStatus},
		{"null payload", fakeRow{status: 200, payload: nil}, store.ErrInvalidPayload},
		{"broken payload", fakeRow{status: 200, payload: []byte(`{"id":`)}, store.ErrInvalidPayload},
		{"no row", fakeRow{err: pgx.ErrNoRows}, store.ErrNoResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(tt.row)
			_, err := s.ThingsGet(context.Background(), 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, store.IsGatewayFailure(err))

			var gwErr *store.GatewayError
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, "things_get", gwErr.Routine)
		})
	}
}

func TestSessionWrapsTransportErrors(t *testing.T) {
	t.Parallel()

	cause := &pgconn.PgError{Code: "42883", Message: "function pig.things_get(integer) does not exist"}
	s, _ := newTestSession(fakeRow{err: cause})

	_, err := s.ThingsGet(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, store.IsGatewayFailure(err))
	assert.True(t, IsUndefinedFunction(err))
}

func TestResolveAPIKey(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		s, conn := newTestSession(fakeRow{status: 200, payload: []byte(`{"person_id":3}`)})
		id, ok, err := s.ResolveAPIKey(context.Background(), "abcd")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, id)
		assert.Equal(t, []any{"abcd"}, conn.args[0])
		assert.Equal(t, routineQuery(DefaultSchema, "apikey_get", 1), conn.queries[0])
	})

	t.Run("not found is absence, not error", func(t *testing.T) {
		for _, status := range []int{404, 401, 500} {
			s, _ := newTestSession(fakeRow{status: status, payload: []byte(`{}`)})
			id, ok, err := s.ResolveAPIKey(context.Background(), "zzzz")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, id)
		}
	})

	t.Run("found without person_id", func(t *testing.T) {
		s, _ := newTestSession(fakeRow{status: 200, payload: []byte(`{}`)})
		_, ok, err := s.ResolveAPIKey(context.Background(), "abcd")
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, store.ErrInvalidPayload))
	})

	t.Run("found with non-object payload", func(t *testing.T) {
		s, _ := newTestSession(fakeRow{status: 200, payload: []byte(`[1,2]`)})
		_, _, err := s.ResolveAPIKey(context.Background(), "abcd")
		require.Error(t, err)
		assert.True(t, store.IsGatewayFailure(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		s, _ := newTestSession(fakeRow{err: context.Canceled})
		_, ok, err := s.ResolveAPIKey(context.Background(), "abcd")
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, IsCanceled(err))
	})
}

func TestSessionReleaseOnce(t *testing.T) {
	t.Parallel()

	released := 0
	s := newSession(&fakeConn{}, func() { released++ }, DefaultSchema, nil)

	s.Release()
	s.Release()
	assert.Equal(t, 1, released)
}

func TestResultPayloadIsVerbatim(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"name":"Ada","id":42}`)
	s, _ := newTestSession(fakeRow{status: 200, payload: raw})
	res, err := s.PersonGet(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(raw), res.Payload)
}
