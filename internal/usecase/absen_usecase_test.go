package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/iqraa07/AbsensiLokasi/internal/absen"
	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	officeLat = -5.1787531
	officeLng = 119.4390442
)

// MockAbsenRepository is a mock implementation of repository.AbsenRepository
type MockAbsenRepository struct {
	mock.Mock
}

func (m *MockAbsenRepository) Create(a *model.Absen) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAbsenRepository) GetTodayEvents(pegawaiID uint, dateKey string) ([]model.Absen, error) {
	args := m.Called(pegawaiID, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Absen), args.Error(1)
}

func (m *MockAbsenRepository) GetHistory(pegawaiID uint, limit int) ([]model.Absen, error) {
	args := m.Called(pegawaiID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Absen), args.Error(1)
}

func (m *MockAbsenRepository) CountByDateKey(companyID, dateKey string) (int64, error) {
	args := m.Called(companyID, dateKey)
	return args.Get(0).(int64), args.Error(1)
}

// MockKantorRepository is a mock implementation of repository.KantorRepository
type MockKantorRepository struct {
	mock.Mock
}

func (m *MockKantorRepository) GetByCompanyID(companyID string) (*model.Kantor, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kantor), args.Error(1)
}

func (m *MockKantorRepository) Create(kantor *model.Kantor) error {
	args := m.Called(kantor)
	return args.Error(0)
}

// MockPengaturanRepository is a mock implementation of repository.PengaturanRepository
type MockPengaturanRepository struct {
	mock.Mock
}

func (m *MockPengaturanRepository) GetByPegawaiID(pegawaiID uint) (*model.Pengaturan, error) {
	args := m.Called(pegawaiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pengaturan), args.Error(1)
}

func (m *MockPengaturanRepository) Update(p *model.Pengaturan) error {
	args := m.Called(p)
	return args.Error(0)
}

// MockGeocoder is a mock implementation of geocoder.ReverseGeocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lng float64) string {
	args := m.Called(ctx, lat, lng)
	return args.String(0)
}

// MockPublisher is a mock implementation of stream.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(ctx context.Context, event *model.Absen) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) MarkAuto(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func kantorNobel() *model.Kantor {
	return &model.Kantor{
		CompanyID:   "cmpA",
		NamaKantor:  "ITB Nobel Indonesia",
		Latitude:    officeLat,
		Longitude:   officeLng,
		RadiusMeter: 100,
	}
}

func newUsecase(absenRepo *MockAbsenRepository, kantorRepo *MockKantorRepository, pengaturanRepo *MockPengaturanRepository, geo *MockGeocoder, pub *MockPublisher) *AbsenUsecase {
	return NewAbsenUsecase(
		absenRepo, kantorRepo, pengaturanRepo,
		geo, pub, nil,
		absen.NewGuard(time.Millisecond),
		zap.NewNop(), "cmpA",
	)
}

func TestSubmit_CheckInSuccess(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	geo := new(MockGeocoder)
	pub := new(MockPublisher)
	u := newUsecase(absenRepo, kantorRepo, new(MockPengaturanRepository), geo, pub)

	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)
	geo.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("Jl. Sultan Alauddin, Makassar")
	absenRepo.On("Create", mock.Anything).Return(nil)
	pub.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	res, err := u.Submit(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Type:      absen.TypeIn,
		Lat:       -5.17920, // ~50 m dari kantor
		Lng:       119.43904,
		Accuracy:  8,
		Device:    "Pixel 7",
	})

	assert.NoError(t, err)
	assert.Equal(t, "IN", res.Event.Type)
	assert.Equal(t, "Jl. Sultan Alauddin, Makassar", res.Event.Address)
	assert.NotEmpty(t, res.Event.EventID)
	assert.Less(t, res.JarakM, 100.0)
	absenRepo.AssertCalled(t, "Create", mock.Anything)
}

func TestSubmit_RejectsOutsideRadius(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	u := newUsecase(absenRepo, kantorRepo, new(MockPengaturanRepository), new(MockGeocoder), new(MockPublisher))

	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)

	_, err := u.Submit(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Type:      absen.TypeIn,
		Lat:       -5.18325, // ~500 m dari kantor
		Lng:       119.43904,
	})

	var diLuar *DiLuarRadiusError
	assert.ErrorAs(t, err, &diLuar)
	assert.Greater(t, diLuar.JarakM, 100.0)
	assert.Equal(t, 100.0, diLuar.RadiusM)
	// Penolakan terjadi sebelum ada tulisan
	absenRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubmit_RejectsMockLocation(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	u := newUsecase(absenRepo, kantorRepo, new(MockPengaturanRepository), new(MockGeocoder), new(MockPublisher))

	_, err := u.Submit(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Type:      absen.TypeIn,
		Lat:       officeLat,
		Lng:       officeLng,
		Mock:      true,
	})

	assert.ErrorIs(t, err, ErrMockLocation)
	absenRepo.AssertNotCalled(t, "Create", mock.Anything)
	kantorRepo.AssertNotCalled(t, "GetByCompanyID", mock.Anything)
}

func TestSubmit_RejectsDoubleCheckIn(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	u := newUsecase(absenRepo, kantorRepo, new(MockPengaturanRepository), new(MockGeocoder), new(MockPublisher))

	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{
		{Type: "IN", Ts: time.Now().Add(-2 * time.Hour)},
	}, nil)

	_, err := u.Submit(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Type:      absen.TypeIn,
		Lat:       officeLat,
		Lng:       officeLng,
	})

	assert.ErrorIs(t, err, ErrMasihMasuk)
	absenRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubmit_RejectsCheckOutWithoutCheckIn(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	u := newUsecase(absenRepo, kantorRepo, new(MockPengaturanRepository), new(MockGeocoder), new(MockPublisher))

	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)

	_, err := u.Submit(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Type:      absen.TypeOut,
		Lat:       officeLat,
		Lng:       officeLng,
	})

	assert.ErrorIs(t, err, ErrBelumMasuk)
}

func TestSubmit_GeocodeFailureStillSaves(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	geo := new(MockGeocoder)
	pub := new(MockPublisher)
	u := newUsecase(absenRepo, kantorRepo, new(MockPengaturanRepository), geo, pub)

	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)
	geo.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("") // geocoder gagal
	absenRepo.On("Create", mock.Anything).Return(nil)
	pub.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	res, err := u.Submit(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Type:      absen.TypeIn,
		Lat:       officeLat,
		Lng:       officeLng,
	})

	assert.NoError(t, err)
	assert.Equal(t, "", res.Event.Address)
}

func TestSubmit_GuardRejectsWhileInFlight(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	geo := new(MockGeocoder)
	pub := new(MockPublisher)

	u := NewAbsenUsecase(
		absenRepo, kantorRepo, new(MockPengaturanRepository),
		geo, pub, nil,
		absen.NewGuard(time.Second), // cooldown panjang
		zap.NewNop(), "cmpA",
	)

	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)
	geo.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("")
	absenRepo.On("Create", mock.Anything).Return(nil)
	pub.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	req := SubmitRequest{PegawaiID: 7, Type: absen.TypeIn, Lat: officeLat, Lng: officeLng}

	_, err := u.Submit(context.Background(), req)
	assert.NoError(t, err)

	// Masih dalam cooldown 1 detik
	_, err = u.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrSedangProses)
}

func TestAuto_FiresCheckInInsideRadius(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	pengaturanRepo := new(MockPengaturanRepository)
	geo := new(MockGeocoder)
	pub := new(MockPublisher)
	u := newUsecase(absenRepo, kantorRepo, pengaturanRepo, geo, pub)

	pengaturanRepo.On("GetByPegawaiID", uint(7)).Return(&model.Pengaturan{PegawaiID: 7, AutoAbsen: true}, nil)
	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)
	pub.On("MarkAuto", mock.Anything, mock.Anything).Return(true, nil)
	geo.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("")
	absenRepo.On("Create", mock.Anything).Return(nil)
	pub.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	res, err := u.Auto(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Lat:       officeLat,
		Lng:       officeLng,
	})

	assert.NoError(t, err)
	assert.True(t, res.Fired)
	assert.Equal(t, absen.TypeIn, res.Action)
	assert.Equal(t, "IN", res.Submit.Event.Type)
}

func TestAuto_NoActionWhenDisabled(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	pengaturanRepo := new(MockPengaturanRepository)
	u := newUsecase(absenRepo, kantorRepo, pengaturanRepo, new(MockGeocoder), new(MockPublisher))

	pengaturanRepo.On("GetByPegawaiID", uint(7)).Return(&model.Pengaturan{PegawaiID: 7, AutoAbsen: false}, nil)
	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)

	res, err := u.Auto(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Lat:       officeLat,
		Lng:       officeLng,
	})

	assert.NoError(t, err)
	assert.False(t, res.Fired)
	absenRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuto_DedupeKeyAlreadyMarked(t *testing.T) {
	absenRepo := new(MockAbsenRepository)
	kantorRepo := new(MockKantorRepository)
	pengaturanRepo := new(MockPengaturanRepository)
	pub := new(MockPublisher)
	u := newUsecase(absenRepo, kantorRepo, pengaturanRepo, new(MockGeocoder), pub)

	pengaturanRepo.On("GetByPegawaiID", uint(7)).Return(&model.Pengaturan{PegawaiID: 7, AutoAbsen: true}, nil)
	kantorRepo.On("GetByCompanyID", "cmpA").Return(kantorNobel(), nil)
	absenRepo.On("GetTodayEvents", uint(7), mock.Anything).Return([]model.Absen{}, nil)
	pub.On("MarkAuto", mock.Anything, mock.Anything).Return(false, nil) // sudah dipicu

	res, err := u.Auto(context.Background(), SubmitRequest{
		PegawaiID: 7,
		Lat:       officeLat,
		Lng:       officeLng,
	})

	assert.NoError(t, err)
	assert.False(t, res.Fired)
	absenRepo.AssertNotCalled(t, "Create", mock.Anything)
}
