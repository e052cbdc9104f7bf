// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"fitcore/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu           sync.Mutex
	users        []*domain.User
	profiles     map[int64]*domain.UserProfile
	sessions     map[string]*domain.Session
	measurements []domain.AnthropometricRecord
	foods        []domain.FoodItem
	ingestions   []domain.IngestionEvent
	snapshots    []domain.NutritionSnapshot

	userIDCounter        int64
	measurementIDCounter int64
	foodIDCounter        int64
	ingestionIDCounter   int64
	lineIDCounter        int64
	snapshotIDCounter    int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]*domain.UserProfile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.IntakeRepository = (*DB)(nil)
var _ domain.SnapshotRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// dayBounds returns the UTC window of a local calendar day.
func dayBounds(localDay string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC(), nil
}

func localDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

// newestFirst orders by created_at desc, then id desc.
func newestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) int64) {
	slices.SortFunc(items, func(a, b T) int {
		return cmp.Or(
			createdAt(b).Compare(createdAt(a)),
			cmp.Compare(id(b), id(a)),
		)
	})
}

func limited[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// --- ProfileRepository ---

// GetProfile returns the user's profile, or nil if the user does not exist.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	ret := *p
	if p.BirthDate != nil {
		b := *p.BirthDate
		ret.BirthDate = &b
	}
	return &ret, nil
}

// UpdateProfile replaces the editable profile fields.
func (db *DB) UpdateProfile(ctx context.Context, p domain.UserProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cur, ok := db.profiles[p.UserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	cur.Name = p.Name
	cur.Sex = p.Sex
	cur.BirthDate = nil
	if p.BirthDate != nil {
		b := *p.BirthDate
		cur.BirthDate = &b
	}
	cur.ActivityLevel = p.ActivityLevel
	cur.ProgramCategory = p.ProgramCategory
	cur.MealsPerDay = p.MealsPerDay
	for _, u := range db.users {
		if u.ID == p.UserID {
			u.Name = p.Name
		}
	}
	return nil
}

// ListUserIDs returns every user id in ascending order.
func (db *DB) ListUserIDs(ctx context.Context) ([]int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ids := make([]int64, 0, len(db.users))
	for _, u := range db.users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// --- MeasurementRepository ---

// AddMeasurement stores a measurement record.
func (db *DB) AddMeasurement(ctx context.Context, rec domain.AnthropometricRecord) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.measurementIDCounter++
	rec.ID = db.measurementIDCounter
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.Day = localDay(rec.CreatedAt)
	db.measurements = append(db.measurements, rec)
	return rec.ID, nil
}

// LatestMeasurement returns the user's newest record, or nil.
func (db *DB) LatestMeasurement(ctx context.Context, userID int64) (*domain.AnthropometricRecord, error) {
	recent, err := db.ListRecentMeasurements(ctx, userID, 1)
	if err != nil || len(recent) == 0 {
		return nil, err
	}
	return &recent[0], nil
}

// ListRecentMeasurements lists the user's records, newest first.
func (db *DB) ListRecentMeasurements(ctx context.Context, userID int64, limit int) ([]domain.AnthropometricRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.AnthropometricRecord
	for _, m := range db.measurements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	newestFirst(out,
		func(m domain.AnthropometricRecord) time.Time { return m.CreatedAt },
		func(m domain.AnthropometricRecord) int64 { return m.ID })
	return limited(out, limit), nil
}

// --- IntakeRepository ---

// AddFood stores a catalogue entry.
func (db *DB) AddFood(ctx context.Context, f domain.FoodItem) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.foodIDCounter++
	f.ID = db.foodIDCounter
	db.foods = append(db.foods, f)
	return f.ID, nil
}

// ListFoods lists catalogue entries by name.
func (db *DB) ListFoods(ctx context.Context, limit int) ([]domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := slices.Clone(db.foods)
	slices.SortFunc(out, func(a, b domain.FoodItem) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return limited(out, limit), nil
}

func (db *DB) food(id int64) (domain.FoodItem, bool) {
	for _, f := range db.foods {
		if f.ID == id {
			return f, true
		}
	}
	return domain.FoodItem{}, false
}

// AddIngestion stores the event and its lines. Nothing is stored if any line
// references an unknown food.
func (db *DB) AddIngestion(ctx context.Context, ev domain.IngestionEvent) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, l := range ev.Lines {
		if _, ok := db.food(l.FoodID); !ok {
			return 0, domain.ErrFoodNotFound
		}
	}

	db.ingestionIDCounter++
	ev.ID = db.ingestionIDCounter
	ev.CreatedAt = ev.CreatedAt.UTC()
	lines := make([]domain.IngestionLine, len(ev.Lines))
	for i, l := range ev.Lines {
		db.lineIDCounter++
		l.ID = db.lineIDCounter
		l.EventID = ev.ID
		lines[i] = l
	}
	ev.Lines = lines
	db.ingestions = append(db.ingestions, ev)
	return ev.ID, nil
}

// DeleteLatestIngestion deletes the user's most recent event with its lines.
func (db *DB) DeleteLatestIngestion(ctx context.Context, userID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, ev := range db.ingestions {
		if ev.UserID != userID {
			continue
		}
		if lastIdx == -1 || ev.CreatedAt.After(db.ingestions[lastIdx].CreatedAt) ||
			(ev.CreatedAt.Equal(db.ingestions[lastIdx].CreatedAt) && ev.ID > db.ingestions[lastIdx].ID) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return false, nil
	}
	db.ingestions = slices.Delete(db.ingestions, lastIdx, lastIdx+1)
	return true, nil
}

// IntakeLinesForLocalDay joins the user's lines for the day with their foods.
func (db *DB) IntakeLinesForLocalDay(ctx context.Context, userID int64, day string) ([]domain.IntakeLine, error) {
	start, end, err := dayBounds(day)
	if err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.IntakeLine
	for _, ev := range db.ingestions {
		if ev.UserID != userID || ev.CreatedAt.Before(start) || !ev.CreatedAt.Before(end) {
			continue
		}
		for _, l := range ev.Lines {
			f, ok := db.food(l.FoodID)
			if !ok {
				return nil, errors.New("ingestion line references a missing food")
			}
			out = append(out, domain.IntakeLine{
				EventID:    ev.ID,
				MealNumber: ev.MealNumber,
				FoodID:     f.ID,
				FoodName:   f.Name,
				Quantity:   l.Quantity,
				Per100:     f.Per100,
			})
		}
	}
	return out, nil
}

// --- SnapshotRepository ---

// CreateSnapshot appends a snapshot.
func (db *DB) CreateSnapshot(ctx context.Context, s domain.NutritionSnapshot) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.snapshotIDCounter++
	s.ID = db.snapshotIDCounter
	s.CreatedAt = s.CreatedAt.UTC()
	db.snapshots = append(db.snapshots, s)
	return s.ID, nil
}

// ListRecentSnapshots lists the user's snapshots, newest first.
func (db *DB) ListRecentSnapshots(ctx context.Context, userID int64, limit int) ([]domain.NutritionSnapshot, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.NutritionSnapshot
	for _, s := range db.snapshots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	newestFirst(out,
		func(s domain.NutritionSnapshot) time.Time { return s.CreatedAt },
		func(s domain.NutritionSnapshot) int64 { return s.ID })
	return limited(out, limit), nil
}

// --- UserRepository ---

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return u, nil
		}
	}
	// Return nil if not found
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user with an empty profile.
func (db *DB) Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	db.profiles[u.ID] = &domain.UserProfile{
		UserID:        u.ID,
		Email:         email,
		Name:          name,
		ActivityLevel: domain.ActivitySedentary,
		MealsPerDay:   3,
	}
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a session.
func (r *SessionRepo) Create(ctx context.Context, s domain.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.db.sessions[s.Token] = &s
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		ret := *s
		return &ret, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
