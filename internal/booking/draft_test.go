package booking

import (
	"testing"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

func testDestination() models.Destination {
	return models.Destination{
		ID:        7,
		Name:      "Hidden Lagoon",
		UnitPrice: 1000,
		GuestsMax: 8,
		TimeSlots: []string{"08:00", "10:00", "13:00"},
		Status:    models.DestinationActive,
	}
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func readyDraft(t *testing.T) *Draft {
	t.Helper()
	d := NewDraft(1, testDestination())
	if err := d.SetDate(tomorrow()); err != nil {
		t.Fatalf("set date: %v", err)
	}
	if err := d.SetTimeSlot("10:00"); err != nil {
		t.Fatalf("set time slot: %v", err)
	}
	if err := d.AdjustGuests(1, 1); err != nil {
		t.Fatalf("adjust guests: %v", err)
	}
	d.SetContact(Contact{
		FirstName: "Ana", LastName: "Reyes",
		Email: "ana@example.com", Phone: "0917",
	})
	d.SetConsents(Consents{SwimmingConfirmed: true, TermsAccepted: true})
	return d
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(1, testDestination())
	if d.Step != StepDateGuests {
		t.Fatalf("draft must start at step 1, got %d", d.Step)
	}
	if d.Type != models.BookingIndividual || d.Adults != 1 || d.Children != 0 {
		t.Fatalf("unexpected defaults: %s %d/%d", d.Type, d.Adults, d.Children)
	}
	if d.PaymentMethod != models.PaymentGCash {
		t.Fatalf("payment method should be pre-selected, got %s", d.PaymentMethod)
	}
	if d.Total != 250 {
		t.Fatalf("total should be priced for one adult, got %v", d.Total)
	}
	if d.Token == "" {
		t.Fatalf("draft must carry a token")
	}
}

func TestContinueStep1MissingDate(t *testing.T) {
	d := NewDraft(1, testDestination())
	_, err := d.Continue()
	if err == nil {
		t.Fatalf("expected validation error without a date")
	}
	if domain.ValidationField(err) != "selected_date" {
		t.Fatalf("expected selected_date error, got %v", err)
	}
	if d.Step != StepDateGuests {
		t.Fatalf("failed gate must keep the step, got %d", d.Step)
	}
}

func TestContinueStep1SnapshotsDraft(t *testing.T) {
	d := readyDraft(t)
	if _, err := d.Continue(); err != nil {
		t.Fatalf("step 1 gate failed: %v", err)
	}
	if d.Step != StepContactInfo {
		t.Fatalf("expected step 2, got %d", d.Step)
	}
	snap := d.Snapshot
	if snap == nil {
		t.Fatalf("passing step 1 must snapshot the draft")
	}
	if snap.Adults != 2 || snap.Children != 1 || snap.Total != 650 {
		t.Fatalf("snapshot wrong: %+v", snap)
	}
}

func TestContinueStep2FailFastOrder(t *testing.T) {
	d := readyDraft(t)
	d.SetContact(Contact{})
	d.SetConsents(Consents{})
	if _, err := d.Continue(); err != nil {
		t.Fatalf("step 1 gate failed: %v", err)
	}

	// All step-2 fields are invalid; only the first failure is reported.
	_, err := d.Continue()
	if domain.ValidationField(err) != "first_name" {
		t.Fatalf("expected first_name to be reported first, got %v", err)
	}
	if d.Step != StepContactInfo {
		t.Fatalf("failed gate must keep step 2, got %d", d.Step)
	}
}

func TestContinueStep2SwimmingConsentRequired(t *testing.T) {
	d := readyDraft(t)
	d.SetConsents(Consents{SwimmingConfirmed: false, TermsAccepted: true})
	if _, err := d.Continue(); err != nil {
		t.Fatalf("step 1 gate failed: %v", err)
	}

	_, err := d.Continue()
	if domain.ValidationField(err) != "swimming_confirmed" {
		t.Fatalf("expected swimming_confirmed error, got %v", err)
	}
	if d.Step != StepContactInfo {
		t.Fatalf("draft must stay on step 2, got %d", d.Step)
	}
}

func TestContinueStep3ReportsReady(t *testing.T) {
	d := readyDraft(t)
	for i := 0; i < 2; i++ {
		if _, err := d.Continue(); err != nil {
			t.Fatalf("gate %d failed: %v", i+1, err)
		}
	}
	ready, err := d.Continue()
	if err != nil {
		t.Fatalf("step 3 gate failed: %v", err)
	}
	if !ready {
		t.Fatalf("step 3 continue must report ready for submission")
	}
	if d.Step != StepPayment {
		t.Fatalf("submission must not advance past step 3, got %d", d.Step)
	}
}

func TestBackIsNoOpAtStep1(t *testing.T) {
	d := NewDraft(1, testDestination())
	d.Back()
	if d.Step != StepDateGuests {
		t.Fatalf("back at step 1 must be a no-op, got %d", d.Step)
	}
}

func TestBackThenContinueReproducesSnapshot(t *testing.T) {
	d := readyDraft(t)
	if _, err := d.Continue(); err != nil {
		t.Fatalf("step 1 gate failed: %v", err)
	}
	first := *d.Snapshot

	d.Back()
	if d.Step != StepDateGuests {
		t.Fatalf("expected step 1 after back, got %d", d.Step)
	}
	if d.Adults != 2 || d.Children != 1 || d.Date == "" {
		t.Fatalf("back must not clear entered data")
	}

	if _, err := d.Continue(); err != nil {
		t.Fatalf("re-continue failed: %v", err)
	}
	if *d.Snapshot != first {
		t.Fatalf("unchanged data must reproduce the identical snapshot:\n%+v\n%+v", first, *d.Snapshot)
	}
}

func TestSetTypeResetsGuestsAndPrice(t *testing.T) {
	d := readyDraft(t)
	if err := d.SetType(models.BookingPackage); err != nil {
		t.Fatalf("switch to package: %v", err)
	}
	if d.Adults != 8 || d.Children != 0 {
		t.Fatalf("package must book full headcount, got %d/%d", d.Adults, d.Children)
	}
	if d.Total != 1000 {
		t.Fatalf("package total must be the flat price, got %v", d.Total)
	}

	if err := d.SetType(models.BookingIndividual); err != nil {
		t.Fatalf("switch back: %v", err)
	}
	if d.Adults != 1 || d.Children != 0 {
		t.Fatalf("individual reset should be (1, 0), got %d/%d", d.Adults, d.Children)
	}
	if d.Total != 250 {
		t.Fatalf("individual total wrong after reset: %v", d.Total)
	}
}

func TestAdjustGuestsRejectionKeepsDraft(t *testing.T) {
	d := readyDraft(t) // 2 adults, 1 child
	if err := d.AdjustGuests(5, 0); err != nil {
		t.Fatalf("7 adults + 1 child should fit: %v", err)
	}
	before := d.Total
	if err := d.AdjustGuests(0, 1); err == nil {
		t.Fatalf("9 guests should be rejected")
	}
	if d.Adults != 7 || d.Children != 1 {
		t.Fatalf("rejected change must keep last accepted counts, got %d/%d", d.Adults, d.Children)
	}
	if d.Total != before {
		t.Fatalf("rejected change must not touch the total")
	}
}

func TestSetDateRejectsPast(t *testing.T) {
	d := NewDraft(1, testDestination())
	if err := d.SetDate("2020-01-01"); err == nil {
		t.Fatalf("past dates must be rejected")
	}
	if err := d.SetDate(time.Now().Format("2006-01-02")); err != nil {
		t.Fatalf("today must be accepted: %v", err)
	}
}

func TestSetTimeSlotMustBeOffered(t *testing.T) {
	d := NewDraft(1, testDestination())
	if err := d.SetTimeSlot("23:00"); err == nil {
		t.Fatalf("unknown slot must be rejected")
	}
	if err := d.SetTimeSlot("08:00"); err != nil {
		t.Fatalf("offered slot rejected: %v", err)
	}
}

func TestValidateForSubmissionChecksCurrentSlots(t *testing.T) {
	d := readyDraft(t)
	for i := 0; i < 2; i++ {
		if _, err := d.Continue(); err != nil {
			t.Fatalf("gate %d failed: %v", i+1, err)
		}
	}

	dest := testDestination()
	if err := d.ValidateForSubmission(dest); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	// Slot withdrawn between draft creation and submission.
	dest.TimeSlots = []string{"08:00"}
	err := d.ValidateForSubmission(dest)
	if domain.ValidationField(err) != "selected_time" {
		t.Fatalf("expected selected_time error, got %v", err)
	}
}
