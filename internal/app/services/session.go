package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/app/repositories/kvstore"
	"github.com/dmitrijs2005/dashvault/internal/common"
	"github.com/dmitrijs2005/dashvault/internal/dbx"
	"github.com/dmitrijs2005/dashvault/internal/logging"
)

// State is the session manager's position in its lifecycle.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// SessionMarkerKey is the simple-store key holding the serialized
// SessionRecord between runs.
const SessionMarkerKey = "currentUser"

// SessionManager authenticates against the account store and persists a
// lightweight session marker so the next start can skip sign-in.
//
// Lifecycle:
//   - Restore: on start, trust a stored marker if it parses; a malformed
//     marker is discarded and logged, never fatal.
//   - SignIn: verify credentials, write the marker, become Authenticated.
//   - SignOut: delete the marker; the account store is not contacted.
//   - UpdateAccount: delegate to the account store, then refresh the marker.
//
// The marker is a cache of the authenticated account's public fields; the
// account store stays the source of truth.
type SessionManager struct {
	db       *sql.DB
	accounts *AccountService
	log      logging.Logger

	state   State
	current *models.SessionRecord
}

// NewSessionManager constructs a SessionManager in the Unauthenticated state.
func NewSessionManager(db *sql.DB, accounts *AccountService, log logging.Logger) *SessionManager {
	return &SessionManager{db: db, accounts: accounts, log: log, state: StateUnauthenticated}
}

func (m *SessionManager) getKVRepo(db dbx.DBTX) kvstore.Repository {
	return kvstore.NewSQLiteRepository(db)
}

// State returns the current lifecycle state.
func (m *SessionManager) State() State { return m.state }

// Current returns the active session record, or nil when signed out.
func (m *SessionManager) Current() *models.SessionRecord { return m.current }

// Restore checks the simple store for a saved session marker. A present,
// well-formed marker is trusted as-is without consulting the account store.
// A malformed marker is logged, cleared, and treated as absence: the caller
// sees Unauthenticated, never an error.
func (m *SessionManager) Restore(ctx context.Context) (*models.SessionRecord, error) {
	kv := m.getKVRepo(m.db)

	raw, ok, err := kv.Get(ctx, SessionMarkerKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	rec := &models.SessionRecord{}
	if err := json.Unmarshal([]byte(raw), rec); err != nil || rec.ID <= 0 || rec.Email == "" {
		if err == nil {
			err = common.ErrMalformedSession
		}
		m.log.Warn(ctx, "discarding malformed session marker", "error", err.Error())
		if delErr := kv.Delete(ctx, SessionMarkerKey); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}

	m.state = StateAuthenticated
	m.current = rec
	m.log.Info(ctx, "session restored", "email", rec.Email, "id", rec.ID)
	return rec, nil
}

// SignIn validates credentials against the account store and, on success,
// persists the session marker and becomes Authenticated. Unknown email and
// wrong password are indistinguishable to the caller
// (common.ErrInvalidCredentials); store failures propagate unchanged and
// leave the state as it was.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (*models.SessionRecord, error) {
	user, err := m.accounts.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	rec := &models.SessionRecord{Username: user.Username, Email: user.Email, ID: user.ID}
	if err := m.saveMarker(ctx, rec); err != nil {
		return nil, err
	}

	m.state = StateAuthenticated
	m.current = rec
	m.log.Info(ctx, "signed in", "email", rec.Email, "id", rec.ID)
	return rec, nil
}

// SignOut deletes the session marker and returns to Unauthenticated. The
// account store is not contacted. Signing out while signed out is a no-op.
func (m *SessionManager) SignOut(ctx context.Context) error {
	if err := m.getKVRepo(m.db).Delete(ctx, SessionMarkerKey); err != nil {
		return err
	}

	m.state = StateUnauthenticated
	m.current = nil
	m.log.Info(ctx, "signed out")
	return nil
}

// UpdateAccount applies a partial update to the signed-in account and
// refreshes the cached marker fields that changed. Requires an active
// session (common.ErrNoSession otherwise).
func (m *SessionManager) UpdateAccount(ctx context.Context, patch models.UserPatch) (*models.SessionRecord, error) {
	if m.state != StateAuthenticated || m.current == nil {
		return nil, common.ErrNoSession
	}

	user, err := m.accounts.Update(ctx, m.current.ID, patch)
	if err != nil {
		return nil, err
	}

	rec := &models.SessionRecord{Username: user.Username, Email: user.Email, ID: user.ID}
	if err := m.saveMarker(ctx, rec); err != nil {
		return nil, err
	}

	m.current = rec
	return rec, nil
}

func (m *SessionManager) saveMarker(ctx context.Context, rec *models.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return m.getKVRepo(m.db).Set(ctx, SessionMarkerKey, string(data))
}

// IsAuthErr reports whether err is one of the expected sign-in failures, as
// opposed to a store breakage the UI should surface differently.
func IsAuthErr(err error) bool {
	return errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrNoSession)
}
