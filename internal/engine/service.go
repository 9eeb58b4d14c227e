package engine

import (
	"context"
	"time"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

// Service owns one user's session state: the live record plus the handle to
// the persistent store. All mutations go through the service, which writes
// the full record back after each committed mutation. The service is not
// safe for concurrent use; callers must serialize access.
type Service struct {
	store   *storage.RecordRepo
	key     string
	rec     *storage.Record
	version int64

	now func() time.Time
}

// DefaultRecord returns the first-visit state: zeroed gamification fields,
// the stock checklist and plan, and every badge locked.
func DefaultRecord() *storage.Record {
	badges := Badges()
	states := make([]storage.BadgeState, len(badges))
	for i, b := range badges {
		states[i] = storage.BadgeState{ID: b.ID}
	}
	return &storage.Record{
		Sections: DefaultSections(),
		Plan:     DefaultPlan(),
		Badges:   states,
	}
}

// Load reads the user record from the store, falling back to first-visit
// defaults when no record exists yet.
func Load(ctx context.Context, repo *storage.RecordRepo) (*Service, error) {
	s := &Service{store: repo, key: storage.MainUserKey, now: time.Now}

	rec, version, err := repo.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = DefaultRecord()
	}
	s.rec = rec
	s.version = version
	s.syncDefaults()
	return s, nil
}

// NewDetached builds a service with no persistent store. Engine semantics
// are unchanged; saves become no-ops. Used when the store is unreachable at
// session start.
func NewDetached() *Service {
	return &Service{key: storage.MainUserKey, rec: DefaultRecord(), now: time.Now}
}

// Detached reports whether the service runs without a store.
func (s *Service) Detached() bool { return s.store == nil }

// Record exposes the live record for read-only presentation.
func (s *Service) Record() *storage.Record { return s.rec }

// syncDefaults backfills catalog-driven state a stored record may predate:
// missing badge entries, an empty plan, an empty checklist.
func (s *Service) syncDefaults() {
	for _, b := range Badges() {
		if s.rec.Badge(b.ID) == nil {
			s.rec.Badges = append(s.rec.Badges, storage.BadgeState{ID: b.ID})
		}
	}
	if len(s.rec.Plan) == 0 {
		s.rec.Plan = DefaultPlan()
	}
	if len(s.rec.Sections) == 0 {
		s.rec.Sections = DefaultSections()
	}
}

// today returns the current calendar date (local) as YYYY-MM-DD.
func (s *Service) today() string {
	return s.now().Format(time.DateOnly)
}

// persist writes the full record back to the store. A failed write does not
// roll the local mutation back: the state is already committed in memory and
// the next successful save will carry the superset of changes. The failure
// surfaces as a SaveFailed event.
func (s *Service) persist(ctx context.Context) []Event {
	if s.store == nil {
		return nil
	}
	version, err := s.store.Save(ctx, s.key, s.rec, s.version)
	if err != nil {
		return []Event{SaveFailed{Err: err}}
	}
	s.version = version
	return nil
}
