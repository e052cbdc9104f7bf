package app

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"fitcore/internal/domain"
	"fitcore/internal/metrics"
	"fitcore/internal/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=nutrition_mocks_test.go -package=app_test

type profileReader interface {
	GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

type measurementReader interface {
	LatestMeasurement(ctx context.Context, userID int64) (*domain.AnthropometricRecord, error)
}

type intakeReader interface {
	IntakeLinesForLocalDay(ctx context.Context, userID int64, localDay string) ([]domain.IntakeLine, error)
}

type snapshotStore interface {
	CreateSnapshot(ctx context.Context, s domain.NutritionSnapshot) (int64, error)
	ListRecentSnapshots(ctx context.Context, userID int64, limit int) ([]domain.NutritionSnapshot, error)
}

// AdherencePolicy scores how closely real intake follows the goal. Results
// are clamped to [0, 100].
type AdherencePolicy interface {
	Adherence(goal, actual domain.Macros) float64
}

// AdherenceFunc adapts a plain function to AdherencePolicy.
type AdherenceFunc func(goal, actual domain.Macros) float64

func (f AdherenceFunc) Adherence(goal, actual domain.Macros) float64 { return f(goal, actual) }

// NoAdherence always scores 0. Used until an adherence formula is defined.
var NoAdherence AdherencePolicy = AdherenceFunc(func(domain.Macros, domain.Macros) float64 { return 0 })

// NutritionSettings are the engine knobs taken from configuration.
type NutritionSettings struct {
	// SodiumGoal is the daily sodium limit copied into every snapshot goal.
	SodiumGoal float64
	// StrictProgram rejects unrecognized program categories instead of
	// falling back to weight gain.
	StrictProgram bool
}

type NutritionOption func(*NutritionService)

func WithAdherencePolicy(p AdherencePolicy) NutritionOption {
	return func(s *NutritionService) { s.adherence = p }
}

func WithMetrics(m *metrics.Manager) NutritionOption {
	return func(s *NutritionService) { s.metrics = m }
}

// WithClock overrides time.Now, which picks the default snapshot day.
func WithClock(now func() time.Time) NutritionOption {
	return func(s *NutritionService) { s.now = now }
}

// NutritionService builds and stores daily goal-vs-real nutrition snapshots.
type NutritionService struct {
	profiles     profileReader
	measurements measurementReader
	intake       intakeReader
	snapshots    snapshotStore

	settings  NutritionSettings
	adherence AdherencePolicy
	metrics   *metrics.Manager
	now       func() time.Time
}

func NewNutritionService(
	profiles profileReader,
	measurements measurementReader,
	intake intakeReader,
	snapshots snapshotStore,
	settings NutritionSettings,
	opts ...NutritionOption,
) *NutritionService {
	s := &NutritionService{
		profiles:     profiles,
		measurements: measurements,
		intake:       intake,
		snapshots:    snapshots,
		settings:     settings,
		adherence:    NoAdherence,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current local day in "2006-01-02" form.
func (s *NutritionService) Today() string {
	return s.now().In(time.Local).Format("2006-01-02")
}

// ComputeSnapshot derives the user's goals from their latest measurements and
// profile, totals what they logged on localDay, and stores the result. An
// empty localDay means today. Nothing is written when any step fails.
func (s *NutritionService) ComputeSnapshot(ctx context.Context, userID int64, localDay string) (_ *domain.NutritionSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionService.computeSnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if localDay == "" {
		localDay = s.Today()
	}
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.String("day", localDay))

	start := time.Now()
	snap, err := s.computeSnapshot(ctx, userID, localDay)
	s.observe(start, err)
	if err != nil {
		fields := log.Fields{"user_id": userID, "day": localDay}
		if IsDataError(err) {
			log.WithFields(fields).Warnf("nutrition snapshot not computed: %s", err)
		} else {
			log.WithFields(fields).Errorf("nutrition snapshot failed: %s", err)
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"day":      localDay,
		"snapshot": snap.ID,
	}).Debug("nutrition snapshot stored")
	return snap, nil
}

func (s *NutritionService) computeSnapshot(ctx context.Context, userID int64, localDay string) (*domain.NutritionSnapshot, error) {
	if _, err := time.ParseInLocation("2006-01-02", localDay, time.Local); err != nil {
		return nil, validationErrorf("day must be YYYY-MM-DD, got %q", localDay)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}

	measurement, err := s.measurements.LatestMeasurement(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest measurement: %w", err)
	}
	if measurement == nil {
		return nil, domain.ErrMissingAnthropometricData
	}

	goal, err := s.goals(profile, measurement, s.now().In(time.Local))
	if err != nil {
		return nil, err
	}

	lines, err := s.intake.IntakeLinesForLocalDay(ctx, userID, localDay)
	if err != nil {
		return nil, fmt.Errorf("intake lines: %w", err)
	}
	actual := domain.AggregateIntake(lines)

	snap := domain.NutritionSnapshot{
		UserID:    userID,
		Day:       localDay,
		Goal:      roundMacros(goal),
		Real:      roundMacros(actual),
		Adherence: round2(clamp(s.adherence.Adherence(goal, actual), 0, 100)),
		CreatedAt: s.now(),
	}
	id, err := s.snapshots.CreateSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	snap.ID = id
	return &snap, nil
}

// goals runs body composition, metabolic rate and macro allocation in order.
// Age is taken as of now, whatever day the snapshot is for.
func (s *NutritionService) goals(p *domain.UserProfile, m *domain.AnthropometricRecord, now time.Time) (domain.Macros, error) {
	sex, err := domain.ParseSex(string(p.Sex))
	if err != nil {
		return domain.Macros{}, err
	}
	multiplier, err := p.ActivityLevel.Multiplier()
	if err != nil {
		return domain.Macros{}, err
	}
	program, err := domain.ResolveProgram(p.ProgramCategory, s.settings.StrictProgram)
	if err != nil {
		return domain.Macros{}, err
	}

	comp, err := domain.EstimateBodyComposition(*m, sex)
	if err != nil {
		return domain.Macros{}, err
	}
	rate, err := domain.CalculateMetabolicRate(domain.MetabolicInput{
		Weight:             m.Weight,
		BodyFatMass:        comp.FatMass,
		Sex:                sex,
		BirthDate:          p.BirthDate,
		On:                 now,
		ActivityMultiplier: multiplier,
	})
	if err != nil {
		return domain.Macros{}, err
	}
	macros, err := domain.AllocateMacroGoals(rate.CalorieGoal, rate.FatFreeMass, program)
	if err != nil {
		return domain.Macros{}, err
	}

	return domain.Macros{
		Carbohydrates: macros.Carbohydrates,
		Proteins:      macros.Proteins,
		Fats:          macros.Fats,
		Fibers:        macros.Fibers,
		Sodium:        s.settings.SodiumGoal,
		Calories:      rate.CalorieGoal,
	}, nil
}

func (s *NutritionService) observe(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.HistogramSnapshotDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.CounterSnapshotFailures.WithLabelValues(failureReason(err)).Inc()
		return
	}
	s.metrics.CounterSnapshots.Inc()
}

// ListRecent returns stored snapshots, newest first.
func (s *NutritionService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.NutritionSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.snapshots.ListRecentSnapshots(ctx, userID, capLimit(limit))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundMacros(m domain.Macros) domain.Macros {
	return domain.Macros{
		Carbohydrates: round2(m.Carbohydrates),
		Proteins:      round2(m.Proteins),
		Fats:          round2(m.Fats),
		Fibers:        round2(m.Fibers),
		Sodium:        round2(m.Sodium),
		Calories:      round2(m.Calories),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
