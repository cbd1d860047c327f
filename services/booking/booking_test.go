package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
	"github.com/Tshikamisava/nanny-gold-sub003/services/revenue"
)

// memBookingRepo is an in-memory BookingRepository.
type memBookingRepo struct {
	byID map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{byID: make(map[string]*models.Booking)}
}

func (m *memBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	copied := *b
	m.byID[b.ID] = &copied
	return nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("booking not found: %s", id)
	}
	copied := *b
	return &copied, nil
}

func (m *memBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) Update(ctx context.Context, id string, b *models.Booking) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("booking not found: %s", id)
	}
	copied := *b
	m.byID[id] = &copied
	return nil
}

func (m *memBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	b, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("booking not found: %s", id)
	}
	b.Status = status
	return nil
}

func (m *memBookingRepo) ListActiveLongTerm(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.byID {
		if b.DurationType == models.DurationLongTerm && b.Status == models.BookingStatusActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) EnsureIndexes() error { return nil }

// memModificationRepo is an in-memory ModificationRepository.
type memModificationRepo struct {
	byID map[string]*models.ModificationRequest
}

func newMemModificationRepo() *memModificationRepo {
	return &memModificationRepo{byID: make(map[string]*models.ModificationRequest)}
}

func (m *memModificationRepo) Create(ctx context.Context, r *models.ModificationRequest) error {
	copied := *r
	m.byID[r.ID] = &copied
	return nil
}

func (m *memModificationRepo) GetByID(ctx context.Context, id string) (*models.ModificationRequest, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("modification request not found: %s", id)
	}
	copied := *r
	return &copied, nil
}

func (m *memModificationRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.ModificationRequest, error) {
	var out []models.ModificationRequest
	for _, r := range m.byID {
		if r.BookingID == bookingID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memModificationRepo) SetReviewed(ctx context.Context, id, status, reviewer string) error {
	r, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("modification request not found: %s", id)
	}
	r.Status = status
	r.ReviewedBy = reviewer
	return nil
}

func (m *memModificationRepo) EnsureIndexes() error { return nil }

// countingRevenue wraps a real local-allocation revenue service and counts
// finalize calls.
type countingRevenue struct {
	inner     revenue.RevenueService
	finalized int
}

func (c *countingRevenue) FinalizeBooking(ctx context.Context, b *models.Booking) (*models.RevenueBreakdown, error) {
	c.finalized++
	return c.inner.FinalizeBooking(ctx, b)
}

func (c *countingRevenue) GetBreakdown(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error) {
	return c.inner.GetBreakdown(ctx, bookingID)
}

// memRevenueRepo mirrors the unique booking_id constraint.
type memRevenueRepo struct {
	byBooking map[string]*models.RevenueBreakdown
}

func (m *memRevenueRepo) Insert(ctx context.Context, b *models.RevenueBreakdown) error {
	if _, exists := m.byBooking[b.BookingID]; exists {
		return errors.New("duplicate")
	}
	copied := *b
	m.byBooking[b.BookingID] = &copied
	return nil
}

func (m *memRevenueRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error) {
	return m.byBooking[bookingID], nil
}

func (m *memRevenueRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultBookingService, *countingRevenue) {
	revSvc := &countingRevenue{
		inner: revenue.NewRevenueService(&memRevenueRepo{byBooking: make(map[string]*models.RevenueBreakdown)}, nil, nil),
	}
	return &DefaultBookingService{
		Engine:           pricing.NewEngine(nil, nil, nil),
		Revenue:          revSvc,
		BookingRepo:      newMemBookingRepo(),
		ModificationRepo: newMemModificationRepo(),
		Logger:           zap.NewNop(),
	}, revSvc
}

func longTermRequest() CreateBookingRequest {
	return CreateBookingRequest{
		UserID: "u-1",
		Context: models.PricingContext{
			DurationType:      models.DurationLongTerm,
			BookingType:       models.BookingTypeLongTerm,
			HomeSize:          models.HomeThreeBedroom,
			LivingArrangement: models.LiveOut,
		},
		Preferences: models.RawServicePreferences{
			Services:       []string{"cooking"},
			HouseholdTasks: []string{"light_housekeeping"},
		},
	}
}

func TestCreateBookingFinalizesRevenueOnce(t *testing.T) {
	svc, revSvc := newTestService()

	created, result, err := svc.CreateBooking(context.Background(), longTermRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if !result.IsValid {
		t.Fatalf("pricing unexpectedly invalid: %v", result.Errors)
	}
	// 5000 base + 500 cooking; housekeeping is a zero line.
	if math.Abs(created.TotalCost-5500.0) > 0.01 {
		t.Errorf("TotalCost = %v, want 5500.0", created.TotalCost)
	}
	if math.Abs(created.AdditionalServicesCost-500.0) > 0.01 {
		t.Errorf("AdditionalServicesCost = %v, want 500.0", created.AdditionalServicesCost)
	}
	if revSvc.finalized != 1 {
		t.Errorf("finalize calls = %d, want 1", revSvc.finalized)
	}

	breakdown, err := svc.GetRevenueBreakdown(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetRevenueBreakdown failed: %v", err)
	}
	if breakdown == nil {
		t.Fatal("expected a stored revenue breakdown after creation")
	}
	if math.Abs(breakdown.ClientCharge-(created.TotalCost+created.PlacementFee)) > 0.01 {
		t.Errorf("ClientCharge = %v, want monthly total plus placement fee", breakdown.ClientCharge)
	}
}

func TestCreateBookingRejectsInvalidConfiguration(t *testing.T) {
	svc, revSvc := newTestService()

	req := longTermRequest()
	req.Context.HomeSize = ""

	created, result, err := svc.CreateBooking(context.Background(), req)
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want InvalidConfigError", err)
	}
	if created != nil {
		t.Error("no booking must be persisted for an invalid configuration")
	}
	if result == nil || result.IsValid {
		t.Error("expected the invalid pricing result alongside the error")
	}
	if revSvc.finalized != 0 {
		t.Errorf("finalize calls = %d, want 0", revSvc.finalized)
	}
}

func TestModificationWorkflow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, _, err := svc.CreateBooking(ctx, longTermRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	request, err := svc.RequestModification(ctx, ModificationInput{
		BookingID:        created.ID,
		ModificationType: models.ModificationServiceAddition,
		Changes: []models.ServiceChange{
			{Name: models.TagDrivingSupport, Action: models.ChangeActionAdd},
		},
	})
	if err != nil {
		t.Fatalf("RequestModification failed: %v", err)
	}
	if request.Status != models.ModificationStatusPending {
		t.Fatalf("Status = %q, want pending_admin_review", request.Status)
	}
	if math.Abs(request.FullAdjustment-600.0) > 0.01 {
		t.Errorf("FullAdjustment = %v, want 600.0", request.FullAdjustment)
	}
	if math.Abs(request.OngoingMonthlyTotal-6100.0) > 0.01 {
		t.Errorf("OngoingMonthlyTotal = %v, want 6100.0", request.OngoingMonthlyTotal)
	}

	// Nothing applies before review.
	unchanged, _ := svc.GetBooking(ctx, created.ID)
	if unchanged.Services.DrivingSupport {
		t.Error("modification must not apply before admin review")
	}

	reviewed, err := svc.ReviewModification(ctx, request.ID, true, "admin-1")
	if err != nil {
		t.Fatalf("ReviewModification failed: %v", err)
	}
	if reviewed.Status != models.ModificationStatusApplied {
		t.Errorf("Status = %q, want applied", reviewed.Status)
	}

	updated, _ := svc.GetBooking(ctx, created.ID)
	if !updated.Services.DrivingSupport {
		t.Error("approved addition must flip the service flag")
	}
	if math.Abs(updated.TotalCost-6100.0) > 0.01 {
		t.Errorf("TotalCost = %v, want 6100.0 after approval", updated.TotalCost)
	}

	// A settled request cannot be reviewed again.
	if _, err := svc.ReviewModification(ctx, request.ID, false, "admin-2"); err == nil {
		t.Error("expected an error reviewing an already settled request")
	}
}

func TestModificationRejectionLeavesBookingUntouched(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, _, err := svc.CreateBooking(ctx, longTermRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	request, err := svc.RequestModification(ctx, ModificationInput{
		BookingID:        created.ID,
		ModificationType: models.ModificationServiceRemoval,
		Changes: []models.ServiceChange{
			{Name: models.TagCooking, Action: models.ChangeActionRemove},
		},
	})
	if err != nil {
		t.Fatalf("RequestModification failed: %v", err)
	}

	reviewed, err := svc.ReviewModification(ctx, request.ID, false, "admin-1")
	if err != nil {
		t.Fatalf("ReviewModification failed: %v", err)
	}
	if reviewed.Status != models.ModificationStatusRejected {
		t.Errorf("Status = %q, want rejected", reviewed.Status)
	}

	after, _ := svc.GetBooking(ctx, created.ID)
	if !after.Services.Cooking {
		t.Error("rejected removal must leave the service in place")
	}
	if math.Abs(after.TotalCost-created.TotalCost) > 0.01 {
		t.Errorf("TotalCost changed on rejection: %v -> %v", created.TotalCost, after.TotalCost)
	}
}

func TestCancellationModification(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, _, err := svc.CreateBooking(ctx, longTermRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	request, err := svc.RequestModification(ctx, ModificationInput{
		BookingID:        created.ID,
		ModificationType: models.ModificationCancellation,
	})
	if err != nil {
		t.Fatalf("RequestModification failed: %v", err)
	}
	if request.FullAdjustment >= 0 {
		t.Errorf("FullAdjustment = %v, want the negated monthly total", request.FullAdjustment)
	}
	if request.OngoingMonthlyTotal != 0 {
		t.Errorf("OngoingMonthlyTotal = %v, want 0 after cancellation", request.OngoingMonthlyTotal)
	}

	if _, err := svc.ReviewModification(ctx, request.ID, true, "admin-1"); err != nil {
		t.Fatalf("ReviewModification failed: %v", err)
	}

	after, _ := svc.GetBooking(ctx, created.ID)
	if after.Status != models.BookingStatusCancelled {
		t.Errorf("Status = %q, want cancelled", after.Status)
	}

	// A cancelled booking accepts no further modifications.
	if _, err := svc.RequestModification(ctx, ModificationInput{
		BookingID:        created.ID,
		ModificationType: models.ModificationServiceAddition,
		Changes: []models.ServiceChange{
			{Name: models.TagPetCare, Action: models.ChangeActionAdd},
		},
	}); err == nil {
		t.Error("expected an error modifying a cancelled booking")
	}
}
