package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/repository"
	"github.com/shiftboard-app/shiftboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeOffPaste = "Exported 3/14/26\n" +
	"Date and Time\tType\tReason\tAll Day\tDuration\tStatus\n" +
	"Alice Smith\n" +
	"Mon 3/16/26 all day\tTime Off\tvacation\tYes\t1 day\tApproved\n" +
	"Bob Jones\n" +
	"Mon 3/16/26 Through Wed 3/18/26\tTime Off\ttrip\tYes\t3 days\tPending\n"

const fohTimeOffPaste = "Date and Time\tType\tReason\tAll Day\tDuration\tStatus\n" +
	"Cara Lee\n" +
	"Tue 3/17/26 all day\tTime Off\tappointment\tYes\t1 day\tApproved\n"

const availabilityPaste = "Employee,Mon 3/16/26,Tue 3/17/26\n" +
	"Alice Smith,Available All Day,Unavailable All Day\n" +
	`"Bob Jones","Partially Available 9:00 AM - 5:00 PM",Available All Day` + "\n"

type services struct {
	db       *sql.DB
	repo     *repository.SQLiteStoreRepo
	stores   StoreService
	ingest   IngestService
	staffing StaffingService
}

func newServices(t *testing.T) services {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStoreRepo(database)
	uow := testutil.NewTestUoW(database)
	return services{
		db:       database,
		repo:     repo,
		stores:   NewStoreService(repo),
		ingest:   NewIngestService(repo, uow),
		staffing: NewStaffingService(repo, uow),
	}
}

func createStore(t *testing.T, svc StoreService, name string) *domain.Store {
	t.Helper()
	store, err := svc.Create(context.Background(), name)
	require.NoError(t, err)
	return store
}

func TestStoreService_Create(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()

	store := createStore(t, svc.stores, "Downtown Grill")
	assert.Regexp(t, `^downtown-grill-[0-9a-f]{4}$`, store.ID)
	assert.Regexp(t, `^[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}$`, store.ManagementKey)

	got, err := svc.stores.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Downtown Grill", got.Name)

	_, err = svc.stores.Create(ctx, "")
	assert.Error(t, err)
}

func TestStoreService_DeleteRequiresKey(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	assert.Error(t, svc.stores.Delete(ctx, store.ID, "wrong-key"))
	assert.Error(t, svc.stores.Delete(ctx, store.ID, ""))
	require.NoError(t, svc.stores.Delete(ctx, store.ID, store.ManagementKey))

	_, err := svc.stores.GetByID(ctx, store.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreService_SaveSettingsValidation(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	bad := domain.DefaultSettings()
	bad.TierRates.Full = 1.5
	assert.Error(t, svc.stores.SaveSettings(ctx, store.ID, store.ManagementKey, bad))

	bad = domain.DefaultSettings()
	bad.StaffingNeeds["kitchen"] = map[string]int{"12PM": 4}
	assert.Error(t, svc.stores.SaveSettings(ctx, store.ID, store.ManagementKey, bad))

	bad = domain.DefaultSettings()
	bad.StaffingNeeds[domain.DeptBOH]["12PM"] = -1
	assert.Error(t, svc.stores.SaveSettings(ctx, store.ID, store.ManagementKey, bad))

	good := domain.DefaultSettings()
	good.TierRates.Limited = 0.25
	good.StaffingNeeds[domain.DeptFOH]["5PM"] = 9
	require.NoError(t, svc.stores.SaveSettings(ctx, store.ID, store.ManagementKey, good))

	got, err := svc.stores.GetSettings(ctx, store.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got.TierRates.Limited, 1e-9)
	assert.Equal(t, 9, got.StaffingNeeds[domain.DeptFOH]["5PM"])
}

func TestStoreService_SaveTiersValidation(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	err := svc.stores.SaveTiers(ctx, store.ID, store.ManagementKey, domain.EmployeeTiers{"Alice": "manager"})
	assert.Error(t, err)

	tiers := domain.EmployeeTiers{"Alice Smith": domain.TierFull, "Bob Jones": domain.TierLimited}
	require.NoError(t, svc.stores.SaveTiers(ctx, store.ID, store.ManagementKey, tiers))

	got, err := svc.stores.GetTiers(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, tiers, got)
}

func TestImportTimeOff(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	result, err := svc.ingest.ImportTimeOff(ctx, store.ID, store.ManagementKey, domain.DeptBOH, timeOffPaste)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, 2, result.Stats.Added)

	doc, err := svc.ingest.GetCalendar(ctx, store.ID)
	require.NoError(t, err)
	day := doc["2026-03-16"]
	assert.Equal(t, []string{"Alice Smith"}, day.BOH.Approved)
	assert.Equal(t, []string{"Bob Jones"}, day.BOH.Pending)
	// Bob's range runs through the 17th (exclusive end).
	assert.Equal(t, []string{"Bob Jones"}, doc["2026-03-17"].BOH.Pending)
	assert.NotContains(t, doc, "2026-03-18")
}

func TestImportTimeOff_PreservesOtherDepartment(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	_, err := svc.ingest.ImportTimeOff(ctx, store.ID, store.ManagementKey, domain.DeptBOH, timeOffPaste)
	require.NoError(t, err)
	_, err = svc.ingest.ImportTimeOff(ctx, store.ID, store.ManagementKey, domain.DeptFOH, fohTimeOffPaste)
	require.NoError(t, err)

	doc, err := svc.ingest.GetCalendar(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Smith"}, doc["2026-03-16"].BOH.Approved, "FOH import keeps BOH entries")
	assert.Equal(t, []string{"Cara Lee"}, doc["2026-03-17"].FOH.Approved)
	assert.ElementsMatch(t, []string{"Cara Lee"}, doc["2026-03-17"].All.Approved)
	assert.Equal(t, []string{"Bob Jones"}, doc["2026-03-17"].All.Pending)
}

func TestImportTimeOff_Errors(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	_, err := svc.ingest.ImportTimeOff(ctx, store.ID, "wrong-key", domain.DeptBOH, timeOffPaste)
	assert.Error(t, err)

	_, err = svc.ingest.ImportTimeOff(ctx, store.ID, store.ManagementKey, domain.DeptBOH, "no header here")
	assert.Error(t, err)

	_, err = svc.ingest.ImportTimeOff(ctx, "nope", "k", domain.DeptBOH, timeOffPaste)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStaffingCompute(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	tiers := domain.EmployeeTiers{"Alice Smith": domain.TierFull}
	require.NoError(t, svc.stores.SaveTiers(ctx, store.ID, store.ManagementKey, tiers))

	result, err := svc.staffing.Compute(ctx, store.ID, store.ManagementKey, domain.DeptBOH, availabilityPaste, timeOffPaste)
	require.NoError(t, err)
	assert.Equal(t, 2, result.EmployeeCount)
	assert.Equal(t, 2, result.TimeOffRecords)

	doc := result.Doc
	require.Equal(t, "2026-03-16", doc.WeekStart)
	require.Len(t, doc.WeekDates, 2)

	needs := domain.DefaultSettings().NeedsFor(domain.DeptBOH)

	// Monday noon: Alice (full) and Bob (untiered, part rate) are both
	// available, and both have approved or pending time off that day.
	cell := doc.Cells["12PM"]["mon"]
	assert.Equal(t, 2, cell.Raw)
	assert.Equal(t, 1, cell.Effective) // 0.70 + 0.45 rounds to 1
	assert.Equal(t, 2, cell.TimeOff)
	assert.Equal(t, -1, cell.Net)
	assert.Equal(t, needs["12PM"], cell.Need)
	assert.Equal(t, cell.Net-cell.Need, cell.Gap)

	// Tuesday morning: only Bob, whose time off still covers the 17th.
	cell = doc.Cells["9AM"]["tue"]
	assert.Equal(t, 1, cell.Raw)
	assert.Equal(t, 0, cell.Effective) // 0.45 rounds to 0
	assert.Equal(t, 1, cell.TimeOff)

	// The document round-trips through storage.
	stored, err := svc.staffing.Get(ctx, store.ID, domain.DeptBOH)
	require.NoError(t, err)
	assert.Equal(t, doc.Cells, stored.Cells)

	_, err = svc.staffing.Get(ctx, store.ID, domain.DeptFOH)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestImportTimeOff_FailedWriteRollsBack(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	_, err := svc.ingest.ImportTimeOff(ctx, store.ID, store.ManagementKey, domain.DeptBOH, timeOffPaste)
	require.NoError(t, err)

	// The calendar update is the transaction's first write.
	boom := errors.New("disk full")
	failing := NewIngestService(svc.repo, &testutil.FailOnNthExecUoW{DB: svc.db, FailOn: 1, Err: boom})
	_, err = failing.ImportTimeOff(ctx, store.ID, store.ManagementKey, domain.DeptFOH, fohTimeOffPaste)
	assert.ErrorIs(t, err, boom)

	// The stored calendar still reflects only the first import.
	doc, err := svc.ingest.GetCalendar(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Smith"}, doc["2026-03-16"].BOH.Approved)
	assert.Empty(t, doc["2026-03-17"].FOH.Approved)
}

func TestStaffingCompute_FailedWriteRollsBack(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	// Fail the store-stamp update that follows the document upsert;
	// the rollback must take the document with it.
	boom := errors.New("disk full")
	failing := NewStaffingService(svc.repo, &testutil.FailOnNthExecUoW{DB: svc.db, FailOn: 2, Err: boom})
	_, err := failing.Compute(ctx, store.ID, store.ManagementKey, domain.DeptBOH, availabilityPaste, "")
	assert.ErrorIs(t, err, boom)

	_, err = svc.staffing.Get(ctx, store.ID, domain.DeptBOH)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStaffingCompute_Errors(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	store := createStore(t, svc.stores, "Downtown")

	_, err := svc.staffing.Compute(ctx, store.ID, "wrong-key", domain.DeptBOH, availabilityPaste, "")
	assert.Error(t, err)

	_, err = svc.staffing.Compute(ctx, store.ID, store.ManagementKey, domain.DeptBOH, "not an export", "")
	assert.Error(t, err)
}
