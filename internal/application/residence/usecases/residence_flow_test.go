package usecases

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/infrastructure/database/dbtest"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/infrastructure/repository"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

var testPeriod = due.Period{Month: 3, Year: 2026}

type residenceFixture struct {
	db         *gorm.DB
	sites      *repository.SiteRepository
	blocks     *repository.BlockRepository
	apartments *repository.ApartmentRepository
	residents  *repository.ResidentRepository
	dues       *repository.MonthlyDueRepository

	getOrCreateApartment *GetOrCreateApartmentUseCase
	createResident       *CreateResidentUseCase
	updateResident       *UpdateResidentUseCase
	deleteResident       *DeleteResidentUseCase
	createBlock          *CreateBlockUseCase
	updateBlock          *UpdateBlockUseCase
	deleteBlock          *DeleteBlockUseCase
	deleteApartment      *DeleteApartmentUseCase
	listApartments       *ListApartmentsUseCase
	listResidents        *ListResidentsUseCase
	reconcile            *ReconcileSiteUseCase
	resolveSite          *ResolveSiteUseCase
}

func newResidenceFixture(t *testing.T) *residenceFixture {
	t.Helper()
	t.Cleanup(biztime.SetNowFunc(func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}))

	gdb := dbtest.New(t)
	log := logger.Nop()
	f := &residenceFixture{
		db:         gdb,
		sites:      repository.NewSiteRepository(gdb),
		blocks:     repository.NewBlockRepository(gdb),
		apartments: repository.NewApartmentRepository(gdb),
		residents:  repository.NewResidentRepository(gdb),
		dues:       repository.NewMonthlyDueRepository(gdb),
	}
	payments := repository.NewPaymentRepository(gdb)
	complaints := repository.NewComplaintRepository(gdb)
	tx := db.NewTransactionManager(gdb)

	accountant := NewCapacityAccountant(f.apartments, f.blocks, f.residents, log)
	seeder := NewDueSeeder(f.sites, f.dues, decimal.NewFromInt(400), 10, log)
	f.getOrCreateApartment = NewGetOrCreateApartmentUseCase(f.apartments, log)

	f.createResident = NewCreateResidentUseCase(f.residents, f.blocks, f.getOrCreateApartment,
		accountant, seeder, &mockPasswordHasher{}, "TR", log)
	f.updateResident = NewUpdateResidentUseCase(f.residents, f.blocks, f.getOrCreateApartment,
		accountant, "TR", log)
	f.deleteResident = NewDeleteResidentUseCase(f.residents, f.dues, payments, complaints, accountant, log)
	f.createBlock = NewCreateBlockUseCase(f.blocks, log)
	f.updateBlock = NewUpdateBlockUseCase(f.blocks, f.residents, true, log)
	f.deleteBlock = NewDeleteBlockUseCase(f.blocks, f.apartments, f.residents, f.dues, payments, complaints, tx, log)
	f.deleteApartment = NewDeleteApartmentUseCase(f.blocks, f.apartments, f.residents, f.dues, payments, complaints,
		accountant, tx, log)
	f.listApartments = NewListApartmentsUseCase(f.blocks, f.apartments, log)
	f.listResidents = NewListResidentsUseCase(f.residents, log)
	f.reconcile = NewReconcileSiteUseCase(f.blocks, f.apartments, accountant, log)
	f.resolveSite = NewResolveSiteUseCase(f.sites, nil, log)
	return f
}

func (f *residenceFixture) site(t *testing.T, code string, amount int64) *site.Site {
	t.Helper()
	s, err := site.NewSite(code, "Site "+code, decimal.NewFromInt(amount))
	require.NoError(t, err)
	require.NoError(t, f.sites.Create(context.Background(), s))
	return s
}

func (f *residenceFixture) block(t *testing.T, siteID uint, name string, capacity int) uint {
	t.Helper()
	b, err := f.createBlock.Execute(context.Background(), CreateBlockCommand{
		SiteID:         siteID,
		Name:           name,
		ApartmentCount: capacity,
	})
	require.NoError(t, err)
	return b.ID
}

func (f *residenceFixture) addResident(t *testing.T, siteID uint, phone, blockName, no string) uint {
	t.Helper()
	r, err := f.createResident.Execute(context.Background(), CreateResidentCommand{
		SiteID:      siteID,
		FullName:    "Sakin " + phone,
		PhoneNumber: phone,
		Placement:   PlacementInput{BlockName: &blockName, ApartmentNo: &no},
	})
	require.NoError(t, err)
	return r.ID
}

func (f *residenceFixture) getBlock(t *testing.T, id uint) *block.Block {
	t.Helper()
	b, err := f.blocks.GetByID(context.Background(), id)
	require.NoError(t, err)
	return b
}

func (f *residenceFixture) getApartment(t *testing.T, blockID uint, no string) *apartment.Apartment {
	t.Helper()
	a, err := f.apartments.GetByBlockAndNo(context.Background(), blockID, no)
	require.NoError(t, err)
	return a
}

func (f *residenceFixture) dueOf(t *testing.T, userID, siteID uint) *due.MonthlyDue {
	t.Helper()
	d, err := f.dues.GetByUserAndPeriod(context.Background(), userID, siteID, testPeriod)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestCreateResident_MaterializesBlockAndApartment(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 750)

	r, err := f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID:       s.ID(),
		FullName:     "Ayşe Yılmaz",
		PhoneNumber:  "0532 111 22 01",
		Placement:    PlacementInput{BlockName: strPtr("A Blok"), ApartmentNo: strPtr(" 4 ")},
		Plates:       "34 ABC 123",
		ResidentType: "active",
		Password:     "gizli123",
	})
	require.NoError(t, err)

	assert.Equal(t, "+905321112201", r.PhoneNumber)
	assert.Equal(t, "A Blok", r.BlockName)
	assert.Equal(t, "4", r.ApartmentNo)
	assert.Equal(t, string(resident.ResidentTypeHirer), r.ResidentType)
	require.NotNil(t, r.BlockID)
	require.NotNil(t, r.ApartmentID)

	b := f.getBlock(t, *r.BlockID)
	require.NotNil(t, b)
	assert.Equal(t, 4, b.ApartmentCount())
	assert.Equal(t, 1, b.ResidentCount())

	a := f.getApartment(t, b.ID(), "4")
	require.NotNil(t, a)
	assert.Equal(t, *r.ApartmentID, a.ID())
	assert.Equal(t, 1, a.ResidentCount())
	assert.True(t, a.IsOccupied())

	stored, err := f.residents.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:gizli123", stored.PasswordHash())

	d := f.dueOf(t, r.ID, s.ID())
	require.NotNil(t, d)
	assert.Equal(t, due.PaymentStatusUnpaid, d.PaymentStatus())
	assert.True(t, decimal.NewFromInt(750).Equal(d.Amount()))
}

func TestCreateResident_DuplicatePhoneWritesNothing(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	first := f.site(t, "AAAAAA", 500)
	second := f.site(t, "BBBBBB", 500)

	f.addResident(t, first.ID(), "05321112202", "A", "1")

	_, err := f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID:      second.ID(),
		FullName:    "Başka Biri",
		PhoneNumber: "+90 532 111 22 02",
		Placement:   PlacementInput{BlockName: strPtr("Yeni Blok"), ApartmentNo: strPtr("9")},
	})
	assert.ErrorIs(t, err, resident.ErrPhoneTaken)

	created, err := f.blocks.GetByName(ctx, second.ID(), "Yeni Blok")
	require.NoError(t, err)
	assert.Nil(t, created, "no block may be created when the phone is taken")

	roster, err := f.listResidents.Execute(ctx, first.ID())
	require.NoError(t, err)
	assert.Len(t, roster, 1)
}

func TestCreateResident_PlacementErrors(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	other := f.site(t, "ZZZZZZ", 500)
	foreignBlock := f.block(t, other.ID(), "B", 3)

	_, err := f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID: s.ID(), FullName: "Ali", PhoneNumber: "05321112203",
		Placement: PlacementInput{ApartmentNo: strPtr("3")},
	})
	assert.ErrorIs(t, err, apartment.ErrBlockRequired)

	_, err = f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID: s.ID(), FullName: "Ali", PhoneNumber: "05321112203",
		Placement: PlacementInput{BlockID: &foreignBlock, ApartmentNo: strPtr("3")},
	})
	assert.ErrorIs(t, err, block.ErrBlockNotInSite)

	missing := uint(9999)
	_, err = f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID: s.ID(), FullName: "Ali", PhoneNumber: "05321112203",
		Placement: PlacementInput{BlockID: &missing},
	})
	assert.ErrorIs(t, err, block.ErrBlockNotFound)

	_, err = f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID: s.ID(), FullName: "Ali", PhoneNumber: "05321112203", Password: "12345",
	})
	assert.ErrorIs(t, err, resident.ErrPasswordTooShort)

	r, err := f.createResident.Execute(ctx, CreateResidentCommand{
		SiteID: s.ID(), FullName: "Ali", PhoneNumber: "05321112203",
	})
	require.NoError(t, err)
	assert.Nil(t, r.BlockID)
	assert.Nil(t, r.ApartmentID)
	assert.Equal(t, string(resident.ResidentTypeOwner), r.ResidentType)
}

func TestCreateResident_ExpandsCapacityNeverShrinks(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 5)

	f.addResident(t, s.ID(), "05321112204", "A", "8")
	assert.Equal(t, 8, f.getBlock(t, blockID).ApartmentCount())

	f.addResident(t, s.ID(), "05321112205", "A", "2")
	assert.Equal(t, 8, f.getBlock(t, blockID).ApartmentCount())

	f.addResident(t, s.ID(), "05321112206", "A", "D-1")
	assert.Equal(t, 8, f.getBlock(t, blockID).ApartmentCount())
}

func TestCreateResident_InheritsApartmentDueStatus(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 600)

	firstID := f.addResident(t, s.ID(), "05321112207", "A", "1")
	first := f.dueOf(t, firstID, s.ID())
	require.NotNil(t, first)

	paid, err := due.NewMonthlyDue(firstID, first.ApartmentID(), s.ID(), testPeriod,
		first.Amount(), first.DueDate(), due.PaymentStatusPaid)
	require.NoError(t, err)
	require.NoError(t, f.dues.Upsert(ctx, paid))

	secondID := f.addResident(t, s.ID(), "05321112208", "A", "1")
	second := f.dueOf(t, secondID, s.ID())
	require.NotNil(t, second)
	assert.Equal(t, due.PaymentStatusPaid, second.PaymentStatus())

	thirdID := f.addResident(t, s.ID(), "05321112209", "A", "2")
	third := f.dueOf(t, thirdID, s.ID())
	require.NotNil(t, third)
	assert.Equal(t, due.PaymentStatusUnpaid, third.PaymentStatus())
}

func TestCreateResident_SiteWithoutDueAmountUsesDefault(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "ABCDEF", 0)

	id := f.addResident(t, s.ID(), "05321112210", "A", "1")
	d := f.dueOf(t, id, s.ID())
	require.NotNil(t, d)
	assert.True(t, decimal.NewFromInt(400).Equal(d.Amount()))
}

func TestGetOrCreateApartment_Idempotent(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 20)

	first, err := f.getOrCreateApartment.Execute(ctx, blockID, "12")
	require.NoError(t, err)
	second, err := f.getOrCreateApartment.Execute(ctx, blockID, " 12 ")
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, 0, first.ResidentCount())
	assert.False(t, first.IsOccupied())

	rows, err := f.apartments.ListByBlock(ctx, blockID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = f.getOrCreateApartment.Execute(ctx, blockID, "  ")
	assert.ErrorIs(t, err, apartment.ErrApartmentNoRequired)
}

func TestUpdateResident_MoveRecomputesBothEnds(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	x := f.block(t, s.ID(), "X", 10)
	y := f.block(t, s.ID(), "Y", 10)

	movingID := f.addResident(t, s.ID(), "05321112211", "X", "1")
	f.addResident(t, s.ID(), "05321112212", "X", "1")
	f.addResident(t, s.ID(), "05321112213", "Y", "5")

	moved, err := f.updateResident.Execute(ctx, UpdateResidentCommand{
		SiteID:     s.ID(),
		ResidentID: movingID,
		Placement:  PlacementInput{BlockID: &y, ApartmentNo: strPtr("5")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Y", moved.BlockName)
	assert.Equal(t, "5", moved.ApartmentNo)

	assert.Equal(t, 1, f.getApartment(t, x, "1").ResidentCount())
	assert.Equal(t, 1, f.getBlock(t, x).ResidentCount())
	assert.Equal(t, 2, f.getApartment(t, y, "5").ResidentCount())
	assert.Equal(t, 2, f.getBlock(t, y).ResidentCount())
}

func TestUpdateResident_ApartmentOnlyStaysInBlock(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	x := f.block(t, s.ID(), "X", 3)

	id := f.addResident(t, s.ID(), "05321112214", "X", "1")

	moved, err := f.updateResident.Execute(ctx, UpdateResidentCommand{
		SiteID:     s.ID(),
		ResidentID: id,
		Placement:  PlacementInput{ApartmentNo: strPtr("6")},
	})
	require.NoError(t, err)
	require.NotNil(t, moved.BlockID)
	assert.Equal(t, x, *moved.BlockID)
	assert.Equal(t, "6", moved.ApartmentNo)

	a1 := f.getApartment(t, x, "1")
	assert.Equal(t, 0, a1.ResidentCount())
	assert.False(t, a1.IsOccupied())
	assert.Equal(t, 1, f.getApartment(t, x, "6").ResidentCount())

	b := f.getBlock(t, x)
	assert.Equal(t, 6, b.ApartmentCount())
	assert.Equal(t, 1, b.ResidentCount())
}

func TestUpdateResident_Fields(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	other := f.site(t, "ZZZZZZ", 500)

	id := f.addResident(t, s.ID(), "05321112215", "A", "1")
	f.addResident(t, s.ID(), "05321112216", "A", "2")

	updated, err := f.updateResident.Execute(ctx, UpdateResidentCommand{
		SiteID:       s.ID(),
		ResidentID:   id,
		FullName:     strPtr("Yeni İsim"),
		Plates:       strPtr("06 XYZ 99"),
		ResidentType: strPtr("HIRER"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Yeni İsim", updated.FullName)
	assert.Equal(t, "06 XYZ 99", updated.Plates)
	assert.Equal(t, string(resident.ResidentTypeHirer), updated.ResidentType)
	assert.Equal(t, "A", updated.BlockName)

	_, err = f.updateResident.Execute(ctx, UpdateResidentCommand{
		SiteID: s.ID(), ResidentID: id, PhoneNumber: strPtr("0532 111 22 16"),
	})
	assert.ErrorIs(t, err, resident.ErrPhoneTaken)

	same, err := f.updateResident.Execute(ctx, UpdateResidentCommand{
		SiteID: s.ID(), ResidentID: id, PhoneNumber: strPtr("0532 111 22 15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+905321112215", same.PhoneNumber)

	_, err = f.updateResident.Execute(ctx, UpdateResidentCommand{SiteID: other.ID(), ResidentID: id})
	assert.ErrorIs(t, err, resident.ErrResidentNotInSite)

	_, err = f.updateResident.Execute(ctx, UpdateResidentCommand{SiteID: s.ID(), ResidentID: 9999})
	assert.ErrorIs(t, err, resident.ErrResidentNotFound)
}

func TestDeleteResident_CascadesAndRecomputes(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 5)

	firstID := f.addResident(t, s.ID(), "05321112217", "A", "3")
	secondID := f.addResident(t, s.ID(), "05321112218", "A", "3")

	require.NoError(t, f.db.Create(&models.PaymentModel{
		UserID: firstID, SiteID: s.ID(), Amount: decimal.NewFromInt(500), PaidAt: time.Now(),
	}).Error)
	require.NoError(t, f.db.Create(&models.ComplaintModel{
		UserID: firstID, SiteID: s.ID(), Title: "Asansör arızalı",
	}).Error)

	require.NoError(t, f.deleteResident.Execute(ctx, firstID))

	assert.Nil(t, f.dueOf(t, firstID, s.ID()))
	var payments, complaints int64
	require.NoError(t, f.db.Model(&models.PaymentModel{}).Where("user_id = ?", firstID).Count(&payments).Error)
	require.NoError(t, f.db.Model(&models.ComplaintModel{}).Where("user_id = ?", firstID).Count(&complaints).Error)
	assert.Zero(t, payments)
	assert.Zero(t, complaints)

	a := f.getApartment(t, blockID, "3")
	assert.Equal(t, 1, a.ResidentCount())
	assert.True(t, a.IsOccupied())

	require.NoError(t, f.deleteResident.Execute(ctx, secondID))
	a = f.getApartment(t, blockID, "3")
	require.NotNil(t, a, "the apartment row outlives its last resident")
	assert.Equal(t, 0, a.ResidentCount())
	assert.False(t, a.IsOccupied())
	assert.Equal(t, 0, f.getBlock(t, blockID).ResidentCount())

	assert.ErrorIs(t, f.deleteResident.Execute(ctx, secondID), resident.ErrResidentNotFound)
}

func TestCounters_SettleAfterMixedOperations(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 4)

	ids := []uint{
		f.addResident(t, s.ID(), "05321112219", "A", "1"),
		f.addResident(t, s.ID(), "05321112220", "A", "1"),
		f.addResident(t, s.ID(), "05321112221", "A", "2"),
		f.addResident(t, s.ID(), "05321112222", "A", "3"),
	}
	_, err := f.updateResident.Execute(ctx, UpdateResidentCommand{
		SiteID: s.ID(), ResidentID: ids[2], Placement: PlacementInput{ApartmentNo: strPtr("1")},
	})
	require.NoError(t, err)
	require.NoError(t, f.deleteResident.Execute(ctx, ids[3]))

	rows, err := f.apartments.ListByBlock(ctx, blockID)
	require.NoError(t, err)
	sum := 0
	for _, a := range rows {
		active, err := f.residents.CountActiveByApartment(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, active, a.ResidentCount(), "apartment %s", a.ApartmentNo())
		assert.Equal(t, active > 0, a.IsOccupied(), "apartment %s", a.ApartmentNo())
		sum += a.ResidentCount()
	}
	assert.Equal(t, 3, sum)
	assert.Equal(t, sum, f.getBlock(t, blockID).ResidentCount())
}

func TestDeleteApartment(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 6)

	occupantID := f.addResident(t, s.ID(), "05321112223", "A", "2")
	f.addResident(t, s.ID(), "05321112224", "A", "4")

	t.Run("phantom apartment only lowers capacity", func(t *testing.T) {
		err := f.deleteApartment.Execute(ctx, DeleteApartmentCommand{SiteID: s.ID(), BlockID: blockID, ApartmentNo: "5"})
		require.NoError(t, err)
		assert.Equal(t, 5, f.getBlock(t, blockID).ApartmentCount())
	})

	t.Run("materialized apartment takes its residents along", func(t *testing.T) {
		err := f.deleteApartment.Execute(ctx, DeleteApartmentCommand{SiteID: s.ID(), BlockID: blockID, ApartmentNo: "2"})
		require.NoError(t, err)

		assert.Nil(t, f.getApartment(t, blockID, "2"))
		gone, err := f.residents.GetByID(ctx, occupantID)
		require.NoError(t, err)
		assert.Nil(t, gone)
		assert.Nil(t, f.dueOf(t, occupantID, s.ID()))

		b := f.getBlock(t, blockID)
		assert.Equal(t, 4, b.ApartmentCount())
		assert.Equal(t, 1, b.ResidentCount())
	})

	t.Run("block of another site", func(t *testing.T) {
		other := f.site(t, "ZZZZZZ", 500)
		err := f.deleteApartment.Execute(ctx, DeleteApartmentCommand{SiteID: other.ID(), BlockID: blockID, ApartmentNo: "1"})
		assert.ErrorIs(t, err, block.ErrBlockNotInSite)
	})
}

func TestDeleteApartment_CapacityFloorsAtZero(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 1)

	cmd := DeleteApartmentCommand{SiteID: s.ID(), BlockID: blockID, ApartmentNo: "1"}
	require.NoError(t, f.deleteApartment.Execute(ctx, cmd))
	require.NoError(t, f.deleteApartment.Execute(ctx, cmd))
	assert.Equal(t, 0, f.getBlock(t, blockID).ApartmentCount())
}

func TestDeleteBlock_RemovesEverythingInside(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	doomed := f.block(t, s.ID(), "A", 3)
	kept := f.block(t, s.ID(), "B", 3)

	gone := f.addResident(t, s.ID(), "05321112225", "A", "1")
	f.addResident(t, s.ID(), "05321112226", "A", "2")
	stays := f.addResident(t, s.ID(), "05321112227", "B", "1")

	require.NoError(t, f.deleteBlock.Execute(ctx, DeleteBlockCommand{BlockID: doomed, SiteID: s.ID()}))

	assert.Nil(t, f.getBlock(t, doomed))
	rows, err := f.apartments.ListByBlock(ctx, doomed)
	require.NoError(t, err)
	assert.Empty(t, rows)

	r, err := f.residents.GetByID(ctx, gone)
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.Nil(t, f.dueOf(t, gone, s.ID()))

	r, err = f.residents.GetByID(ctx, stays)
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, 1, f.getBlock(t, kept).ResidentCount())

	assert.ErrorIs(t, f.deleteBlock.Execute(ctx, DeleteBlockCommand{BlockID: doomed}), block.ErrBlockNotFound)
}

func TestCreateBlock_RejectsDuplicatesAndBadCapacity(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	other := f.site(t, "ZZZZZZ", 500)
	f.block(t, s.ID(), "A", 3)

	_, err := f.createBlock.Execute(ctx, CreateBlockCommand{SiteID: s.ID(), Name: "A", ApartmentCount: 2})
	assert.ErrorIs(t, err, block.ErrBlockNameTaken)

	_, err = f.createBlock.Execute(ctx, CreateBlockCommand{SiteID: s.ID(), Name: "C", ApartmentCount: 0})
	assert.ErrorIs(t, err, block.ErrInvalidApartmentCount)

	_, err = f.createBlock.Execute(ctx, CreateBlockCommand{SiteID: other.ID(), Name: "A", ApartmentCount: 2})
	assert.NoError(t, err)
}

func TestUpdateBlock(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	a := f.block(t, s.ID(), "A", 10)
	f.block(t, s.ID(), "B", 10)
	f.addResident(t, s.ID(), "05321112228", "A", "7")

	updated, err := f.updateBlock.Execute(ctx, UpdateBlockCommand{
		BlockID: a, SiteID: s.ID(), Description: strPtr("Kuzey cephe"),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, 10, updated.ApartmentCount)
	assert.Equal(t, "Kuzey cephe", updated.Description)

	_, err = f.updateBlock.Execute(ctx, UpdateBlockCommand{BlockID: a, Name: strPtr("B")})
	assert.ErrorIs(t, err, block.ErrBlockNameTaken)

	_, err = f.updateBlock.Execute(ctx, UpdateBlockCommand{BlockID: a, ApartmentCount: intPtr(6)})
	assert.ErrorIs(t, err, block.ErrCapacityBelowOccupancy)

	updated, err = f.updateBlock.Execute(ctx, UpdateBlockCommand{BlockID: a, ApartmentCount: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.ApartmentCount)

	_, err = f.updateBlock.Execute(ctx, UpdateBlockCommand{BlockID: a, Name: strPtr("A")})
	assert.NoError(t, err)

	other := f.site(t, "ZZZZZZ", 500)
	_, err = f.updateBlock.Execute(ctx, UpdateBlockCommand{BlockID: a, SiteID: other.ID(), Name: strPtr("C")})
	assert.ErrorIs(t, err, block.ErrBlockNotInSite)
}

func TestListApartments_MergesPhantomSlots(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 4)
	f.addResident(t, s.ID(), "05321112229", "A", "2")
	f.addResident(t, s.ID(), "05321112230", "A", "D-1")

	slots, err := f.listApartments.Execute(ctx, ListApartmentsQuery{SiteID: s.ID(), BlockID: blockID})
	require.NoError(t, err)

	nos := make([]string, len(slots))
	materialized := map[string]bool{}
	for i, slot := range slots {
		nos[i] = slot.ApartmentNo
		materialized[slot.ApartmentNo] = slot.Materialized
	}
	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "D-1"}, nos)
	assert.True(t, materialized["2"])
	assert.True(t, materialized["D-1"])
	assert.False(t, materialized["1"])
}

func TestListResidents_OrderedByBlockThenApartment(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)

	f.addResident(t, s.ID(), "05321112231", "B", "1")
	f.addResident(t, s.ID(), "05321112232", "A", "10")
	f.addResident(t, s.ID(), "05321112233", "A", "2")

	roster, err := f.listResidents.Execute(ctx, s.ID())
	require.NoError(t, err)
	require.Len(t, roster, 3)

	got := make([]string, len(roster))
	for i, r := range roster {
		got[i] = r.BlockName + "/" + r.ApartmentNo
	}
	assert.Equal(t, []string{"A/2", "A/10", "B/1"}, got)

	empty, err := f.listResidents.Execute(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReconcileSite_RepairsDriftedCounters(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)
	blockID := f.block(t, s.ID(), "A", 3)
	f.addResident(t, s.ID(), "05321112234", "A", "1")
	f.addResident(t, s.ID(), "05321112235", "A", "2")

	a1 := f.getApartment(t, blockID, "1")
	require.NoError(t, f.apartments.SetResidentCount(ctx, a1.ID(), 5))
	require.NoError(t, f.blocks.SetResidentCount(ctx, blockID, 42))

	result, err := f.reconcile.Execute(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Blocks)
	assert.Equal(t, 2, result.Apartments)

	assert.Equal(t, 1, f.getApartment(t, blockID, "1").ResidentCount())
	assert.Equal(t, 2, f.getBlock(t, blockID).ResidentCount())
}

func TestResolveSite_CodeAndIDAgree(t *testing.T) {
	f := newResidenceFixture(t)
	ctx := context.Background()
	s := f.site(t, "ABCDEF", 500)

	byCode, err := f.resolveSite.Execute(ctx, "ABCDEF")
	require.NoError(t, err)
	byID, err := f.resolveSite.Execute(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, s.ID(), byCode)
	assert.Equal(t, byCode, byID)

	_, err = f.resolveSite.Execute(ctx, "NOSUCH")
	assert.ErrorIs(t, err, site.ErrSiteNotFound)
}

type recordingRosterWriter struct {
	entries []*resident.RosterEntry
}

func (w *recordingRosterWriter) Write(out io.Writer, entries []*resident.RosterEntry) error {
	w.entries = entries
	_, err := out.Write([]byte("xlsx"))
	return err
}

func TestExportResidents_WritesRoster(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "ABCDEF", 500)
	f.addResident(t, s.ID(), "05321112236", "A", "1")

	writer := &recordingRosterWriter{}
	uc := NewExportResidentsUseCase(f.residents, writer, logger.Nop())

	var buf bytes.Buffer
	require.NoError(t, uc.Execute(context.Background(), s.ID(), &buf))
	assert.Equal(t, "xlsx", buf.String())
	require.Len(t, writer.entries, 1)
	assert.Equal(t, "A", writer.entries[0].BlockName)
}

func TestListBlocks_OrderedByNameWithCounters(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "LSTBLK", 0)
	other := f.site(t, "OTHERB", 0)
	f.block(t, s.ID(), "B", 2)
	f.block(t, other.ID(), "A", 2)
	f.addResident(t, s.ID(), "05321112240", "A", "3")

	blocks, err := NewListBlocksUseCase(f.blocks, logger.Nop()).Execute(context.Background(), s.ID())
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "A", blocks[0].Name)
	assert.Equal(t, 3, blocks[0].ApartmentCount)
	assert.Equal(t, 1, blocks[0].ResidentCount)
	assert.Equal(t, "B", blocks[1].Name)
	assert.Equal(t, 0, blocks[1].ResidentCount)
}

func TestGetResident_IncludesBlockName(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "GETRES", 0)
	id := f.addResident(t, s.ID(), "05321112241", "C", "1")
	uc := NewGetResidentUseCase(f.residents, f.blocks, logger.Nop())

	r, err := uc.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "C", r.BlockName)
	assert.Equal(t, "1", r.ApartmentNo)
	assert.Equal(t, "+905321112241", r.PhoneNumber)

	_, err = uc.Execute(context.Background(), id+100)
	assert.ErrorIs(t, err, resident.ErrResidentNotFound)
}

// rendezvousBlockRepo holds the first two block name lookups until both have
// read storage, so both callers see the block as missing.
type rendezvousBlockRepo struct {
	block.Repository
	mu      sync.Mutex
	pending int
	arrived sync.WaitGroup
}

func newRendezvousBlockRepo(inner block.Repository) *rendezvousBlockRepo {
	r := &rendezvousBlockRepo{Repository: inner, pending: 2}
	r.arrived.Add(2)
	return r
}

func (r *rendezvousBlockRepo) GetByName(ctx context.Context, siteID uint, name string) (*block.Block, error) {
	b, err := r.Repository.GetByName(ctx, siteID, name)

	r.mu.Lock()
	wait := r.pending > 0
	if wait {
		r.pending--
	}
	r.mu.Unlock()
	if wait {
		r.arrived.Done()
		r.arrived.Wait()
	}
	return b, err
}

func TestCreateResident_ConcurrentNewBlockNameSharesOneBlock(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "RACEBL", 0)
	log := logger.Nop()

	blocks := newRendezvousBlockRepo(f.blocks)
	accountant := NewCapacityAccountant(f.apartments, f.blocks, f.residents, log)
	seeder := NewDueSeeder(f.sites, f.dues, decimal.NewFromInt(400), 10, log)
	uc := NewCreateResidentUseCase(f.residents, blocks, f.getOrCreateApartment,
		accountant, seeder, &mockPasswordHasher{}, "TR", log)

	var wg sync.WaitGroup
	blockIDs := make([]*uint, 2)
	errs := make([]error, 2)
	for i, phone := range []string{"05321112250", "05321112251"} {
		wg.Add(1)
		go func(i int, phone string) {
			defer wg.Done()
			r, err := uc.Execute(context.Background(), CreateResidentCommand{
				SiteID:      s.ID(),
				FullName:    "Sakin " + phone,
				PhoneNumber: phone,
				Placement:   PlacementInput{BlockName: strPtr("Yeni"), ApartmentNo: strPtr("1")},
			})
			errs[i] = err
			if r != nil {
				blockIDs[i] = r.BlockID
			}
		}(i, phone)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.NotNil(t, blockIDs[0])
	require.NotNil(t, blockIDs[1])
	assert.Equal(t, *blockIDs[0], *blockIDs[1])

	var count int64
	require.NoError(t, f.db.Model(&models.BlockModel{}).
		Where("site_id = ? AND name = ?", s.ID(), "Yeni").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err := f.reconcile.Execute(context.Background(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, f.getBlock(t, *blockIDs[0]).ResidentCount())
	assert.Equal(t, 2, f.getApartment(t, *blockIDs[0], "1").ResidentCount())
}

func TestCreateBlock_NameTakenAfterLazyCreation(t *testing.T) {
	f := newResidenceFixture(t)
	s := f.site(t, "LAZYBL", 0)
	f.addResident(t, s.ID(), "05321112252", "Yeni", "1")

	_, err := f.createBlock.Execute(context.Background(), CreateBlockCommand{
		SiteID:         s.ID(),
		Name:           "Yeni",
		ApartmentCount: 4,
	})
	assert.ErrorIs(t, err, block.ErrBlockNameTaken)
}
