package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleetflow/internal/adapters/out/memory"
	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripUoWFactory struct{ ports.UnitOfWorkFactory }

func (f tripUoWFactory) Create() commands.TripUoW { return f.UnitOfWorkFactory.Create() }

type maintenanceUoWFactory struct{ ports.UnitOfWorkFactory }

func (f maintenanceUoWFactory) Create() commands.MaintenanceUoW { return f.UnitOfWorkFactory.Create() }

type driverUoWFactory struct{ ports.UnitOfWorkFactory }

func (f driverUoWFactory) Create() commands.DriverUoW { return f.UnitOfWorkFactory.Create() }

type vehicleUoWFactory struct{ ports.UnitOfWorkFactory }

func (f vehicleUoWFactory) Create() commands.VehicleUoW { return f.UnitOfWorkFactory.Create() }

type vehicleRemovalUoWFactory struct{ ports.UnitOfWorkFactory }

func (f vehicleRemovalUoWFactory) Create() commands.VehicleRemovalUoW {
	return f.UnitOfWorkFactory.Create()
}

type driverRemovalUoWFactory struct{ ports.UnitOfWorkFactory }

func (f driverRemovalUoWFactory) Create() commands.DriverRemovalUoW {
	return f.UnitOfWorkFactory.Create()
}

type expenseUoWFactory struct{ ports.UnitOfWorkFactory }

func (f expenseUoWFactory) Create() commands.ExpenseUoW { return f.UnitOfWorkFactory.Create() }

type mockTripLister struct{ mock.Mock }

func (m *mockTripLister) Handle(ctx context.Context, q queries.ListTripsQuery) ([]queries.ListTripsQueryResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListTripsQueryResponse), args.Error(1)
}

type mockVehicleLister struct{ mock.Mock }

func (m *mockVehicleLister) Handle(
	ctx context.Context,
	q queries.ListVehiclesQuery,
) ([]queries.ListVehiclesQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.ListVehiclesQueryResponse), args.Error(1)
}

type mockDriverLister struct{ mock.Mock }

func (m *mockDriverLister) Handle(
	ctx context.Context,
	q queries.ListDriversQuery,
) ([]queries.ListDriversQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.ListDriversQueryResponse), args.Error(1)
}

type mockMaintenanceLogLister struct{ mock.Mock }

func (m *mockMaintenanceLogLister) Handle(
	ctx context.Context,
	q queries.ListMaintenanceLogsQuery,
) ([]queries.ListMaintenanceLogsQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.ListMaintenanceLogsQueryResponse), args.Error(1)
}

type mockExpenseLister struct{ mock.Mock }

func (m *mockExpenseLister) Handle(
	ctx context.Context,
	q queries.ListExpensesQuery,
) ([]queries.ListExpensesQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.ListExpensesQueryResponse), args.Error(1)
}

var apiStart = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

type testAPI struct {
	echo        *echo.Echo
	trips       *mockTripLister
	vehicles    *mockVehicleLister
	drivers     *mockDriverLister
	maintenance *mockMaintenanceLogLister
	expenses    *mockExpenseLister
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	factory := memory.NewStore().UnitOfWorkFactory()
	clk := clock.NewManual(apiStart)
	publisher := ports.NopEventPublisher{}

	validator, err := services.NewEligibilityValidator()
	require.NoError(t, err)
	lifecycle := services.NewTripLifecycle(validator)
	gate := services.NewMaintenanceGate()

	api := &testAPI{
		trips:       &mockTripLister{},
		vehicles:    &mockVehicleLister{},
		drivers:     &mockDriverLister{},
		maintenance: &mockMaintenanceLogLister{},
		expenses:    &mockExpenseLister{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(Handlers{
		CreateTrip:              commands.NewCreateTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		DispatchTrip:            commands.NewDispatchTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		CompleteTrip:            commands.NewCompleteTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		CancelTrip:              commands.NewCancelTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		RegisterVehicle:         commands.NewRegisterVehicleCommandHandler(vehicleUoWFactory{factory}),
		ToggleVehicleRetirement: commands.NewToggleVehicleRetirementCommandHandler(maintenanceUoWFactory{factory}, clk, publisher),
		RegisterDriver:          commands.NewRegisterDriverCommandHandler(driverUoWFactory{factory}, clk),
		ChangeDriverStatus:      commands.NewChangeDriverStatusCommandHandler(driverUoWFactory{factory}, clk, publisher),
		OpenMaintenance:         commands.NewOpenMaintenanceCommandHandler(maintenanceUoWFactory{factory}, gate, clk, publisher),
		CompleteMaintenance:     commands.NewCompleteMaintenanceCommandHandler(maintenanceUoWFactory{factory}, gate, clk, publisher),
		DeleteVehicle:           commands.NewDeleteVehicleCommandHandler(vehicleRemovalUoWFactory{factory}, clk, publisher),
		DeleteDriver:            commands.NewDeleteDriverCommandHandler(driverRemovalUoWFactory{factory}, clk, publisher),
		RecordExpense:           commands.NewRecordExpenseCommandHandler(expenseUoWFactory{factory}, clk, publisher),
		ListTrips:               api.trips,
		ListVehicles:            api.vehicles,
		ListDrivers:             api.drivers,
		ListMaintenanceLogs:     api.maintenance,
		ListExpenses:            api.expenses,
	}, logger)

	api.echo, err = NewRouter(context.Background(), server, logger)
	require.NoError(t, err)
	return api
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (a *testAPI) registerVehicle(t *testing.T, capacity float64) Vehicle {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/vehicles",
		`{"name":"Truck 1","licensePlate":"MH-12-AB-1234","maxCapacityKg":`+jsonNumber(capacity)+`,"currentOdometer":1000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[Vehicle](t, rec)
}

func (a *testAPI) registerDriver(t *testing.T) Driver {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/drivers",
		`{"name":"Asha","licenseNumber":"DL-0420110149646","licenseExpiryDate":"2030-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[Driver](t, rec)
}

func (a *testAPI) createTrip(t *testing.T, v Vehicle, d Driver, cargo float64) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodPost, "/api/v1/trips",
		`{"vehicleId":"`+v.ID.String()+`","driverId":"`+d.ID.String()+`","cargoWeightKg":`+jsonNumber(cargo)+`}`)
}

func jsonNumber(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestTripLifecycleOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	v := api.registerVehicle(t, 5000)
	d := api.registerDriver(t)
	assert.Equal(t, "Available", v.Status)
	assert.Equal(t, float64(defaultSafetyScore), d.SafetyScore)

	rec := api.createTrip(t, v, d, 4000)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[Trip](t, rec)
	assert.Equal(t, "Draft", created.Status)
	assert.Equal(t, trip.DefaultOrigin, created.Origin)
	assert.Equal(t, trip.DefaultDestination, created.Destination)

	rec = api.do(t, http.MethodPost, "/api/v1/trips/"+created.ID.String()+"/dispatch", `{"startOdometer":1000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dispatched := decode[Trip](t, rec)
	assert.Equal(t, "Dispatched", dispatched.Status)
	require.NotNil(t, dispatched.StartOdometer)
	assert.InDelta(t, 1000, *dispatched.StartOdometer, 0.001)
	require.NotNil(t, dispatched.TripStartTime)

	rec = api.do(t, http.MethodPost, "/api/v1/trips/"+created.ID.String()+"/complete", `{"endOdometer":1250}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	completed := decode[Trip](t, rec)
	assert.Equal(t, "Completed", completed.Status)
	require.NotNil(t, completed.EndOdometer)
	assert.InDelta(t, 1250, *completed.EndOdometer, 0.001)
}

func TestCreateTrip_OverCapacityIsUnprocessable(t *testing.T) {
	api := newTestAPI(t)
	v := api.registerVehicle(t, 5000)
	d := api.registerDriver(t)

	rec := api.createTrip(t, v, d, 6000)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	body := decode[Error](t, rec)
	require.Len(t, body.Violations, 1)
	assert.Contains(t, body.Violations[0], "capacity exceeded")
}

func TestCreateTrip_UnknownVehicleAndDriverAreReportedTogether(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/trips",
		`{"vehicleId":"`+kernel.NewUUID().String()+`","driverId":"`+kernel.NewUUID().String()+`","cargoWeightKg":10}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Len(t, decode[Error](t, rec).Violations, 2)
}

func TestCreateTrip_SchemaViolationIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/trips", `{"cargoWeightKg":-5}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[Error](t, rec)
	assert.Equal(t, "Request does not match the API schema", body.Message)
	assert.NotEmpty(t, body.Violations)
}

func TestCreateTrip_MalformedJSONIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/trips", `{"vehicleId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDispatchTrip_InvalidPathID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/trips/not-a-uuid/dispatch", `{"startOdometer":10}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tripId")
}

func TestDispatchTrip_UnknownTripIsNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/v1/trips/"+kernel.NewUUID().String()+"/dispatch", `{"startOdometer":10}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDispatchTrip_BusyVehicleIsConflict(t *testing.T) {
	api := newTestAPI(t)
	v := api.registerVehicle(t, 5000)
	first := decode[Trip](t, api.createTrip(t, v, api.registerDriver(t), 100))
	second := decode[Trip](t, api.createTrip(t, v, api.registerDriver(t), 100))

	rec := api.do(t, http.MethodPost, "/api/v1/trips/"+first.ID.String()+"/dispatch", `{"startOdometer":1000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/v1/trips/"+second.ID.String()+"/dispatch", `{"startOdometer":1000}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestDispatchTrip_BelowVehicleOdometerIsBadRequest(t *testing.T) {
	api := newTestAPI(t)
	created := decode[Trip](t, api.createTrip(t, api.registerVehicle(t, 5000), api.registerDriver(t), 100))

	rec := api.do(t, http.MethodPost, "/api/v1/trips/"+created.ID.String()+"/dispatch", `{"startOdometer":999}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestCompleteTrip_FromDraftIsConflict(t *testing.T) {
	api := newTestAPI(t)
	created := decode[Trip](t, api.createTrip(t, api.registerVehicle(t, 5000), api.registerDriver(t), 100))

	rec := api.do(t, http.MethodPost, "/api/v1/trips/"+created.ID.String()+"/complete", `{"endOdometer":1200}`)

	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestCancelTrip_IsIdempotent(t *testing.T) {
	api := newTestAPI(t)
	created := decode[Trip](t, api.createTrip(t, api.registerVehicle(t, 5000), api.registerDriver(t), 100))
	path := "/api/v1/trips/" + created.ID.String() + "/cancel"

	first := api.do(t, http.MethodPost, path, "")
	second := api.do(t, http.MethodPost, path, "")

	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())
	assert.Equal(t, "Cancelled", decode[Trip](t, second).Status)
}

func TestMaintenanceOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	v := api.registerVehicle(t, 5000)
	body := `{"vehicleId":"` + v.ID.String() + `","description":"Brake pads","cost":120.5}`

	rec := api.do(t, http.MethodPost, "/api/v1/maintenance-logs", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	opened := decode[MaintenanceLog](t, rec)
	assert.Equal(t, "Pending", opened.Status)
	assert.True(t, opened.ServiceDate.Equal(apiStart))

	rec = api.do(t, http.MethodPost, "/api/v1/maintenance-logs", body)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/v1/maintenance-logs/"+opened.ID.String()+"/complete",
		`{"technicianName":"R. Kulkarni"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	completed := decode[MaintenanceLog](t, rec)
	assert.Equal(t, "Completed", completed.Status)
	assert.Equal(t, "R. Kulkarni", completed.TechnicianName)
}

func TestToggleVehicleRetirement(t *testing.T) {
	api := newTestAPI(t)
	v := api.registerVehicle(t, 5000)
	path := "/api/v1/vehicles/" + v.ID.String() + "/retirement"

	rec := api.do(t, http.MethodPost, path, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "OutOfService", decode[Vehicle](t, rec).Status)

	rec = api.do(t, http.MethodPost, path, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Available", decode[Vehicle](t, rec).Status)
}

func TestChangeDriverStatus(t *testing.T) {
	api := newTestAPI(t)
	d := api.registerDriver(t)
	path := "/api/v1/drivers/" + d.ID.String() + "/status"

	rec := api.do(t, http.MethodPut, path, `{"status":"OnLeave"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "OnLeave", decode[Driver](t, rec).Status)

	rec = api.do(t, http.MethodPut, path, `{"status":"Retired"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteVehicle(t *testing.T) {
	api := newTestAPI(t)
	idle := api.registerVehicle(t, 5000)
	busy := api.registerVehicle(t, 5000)
	require.Equal(t, http.StatusCreated, api.createTrip(t, busy, api.registerDriver(t), 100).Code)

	rec := api.do(t, http.MethodDelete, "/api/v1/vehicles/"+busy.ID.String(), "")
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodDelete, "/api/v1/vehicles/"+idle.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Empty(t, rec.Body.String())

	rec = api.do(t, http.MethodDelete, "/api/v1/vehicles/"+idle.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestDeleteDriver(t *testing.T) {
	api := newTestAPI(t)
	d := api.registerDriver(t)
	created := decode[Trip](t, api.createTrip(t, api.registerVehicle(t, 5000), d, 100))
	path := "/api/v1/drivers/" + d.ID.String()

	rec := api.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/trips/"+created.ID.String()+"/cancel", "").Code)
	rec = api.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
}

func TestRecordExpense(t *testing.T) {
	api := newTestAPI(t)
	v := api.registerVehicle(t, 5000)

	rec := api.do(t, http.MethodPost, "/api/v1/expenses",
		`{"vehicleId":"`+v.ID.String()+`","expenseType":"Fuel","amount":3200,"quantity":40,"unit":"L"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	recorded := decode[Expense](t, rec)
	assert.Equal(t, "Fuel", recorded.ExpenseType)
	assert.True(t, recorded.ExpenseDate.Equal(apiStart))
	require.NotNil(t, recorded.Quantity)
	assert.InDelta(t, 40, *recorded.Quantity, 0.001)

	rec = api.do(t, http.MethodPost, "/api/v1/expenses",
		`{"vehicleId":"`+v.ID.String()+`","expenseType":"Fuel","amount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/v1/expenses",
		`{"vehicleId":"`+kernel.NewUUID().String()+`","expenseType":"Toll","amount":90}`)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestListExpenses_PassesFilters(t *testing.T) {
	api := newTestAPI(t)
	vehicleID := kernel.NewUUID()
	api.expenses.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListExpensesQuery) bool {
		return q.Category() == expense.Toll && q.VehicleID() != nil && q.VehicleID().IsEqual(vehicleID)
	})).Return([]queries.ListExpensesQueryResponse{{
		ID:          kernel.NewUUID(),
		VehicleID:   vehicleID,
		Category:    expense.Toll,
		Amount:      90,
		ExpenseDate: apiStart,
	}}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/expenses?expenseType=Toll&vehicleId="+vehicleID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	expenses := decode[[]Expense](t, rec)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Toll", expenses[0].ExpenseType)
	assert.Nil(t, expenses[0].TripID)
	api.expenses.AssertExpectations(t)
}

func TestListTrips_PassesStatusFilter(t *testing.T) {
	api := newTestAPI(t)
	id := kernel.NewUUID()
	api.trips.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListTripsQuery) bool {
		return q.Status() == trip.Dispatched
	})).Return([]queries.ListTripsQueryResponse{{
		ID:        id,
		VehicleID: kernel.NewUUID(),
		DriverID:  kernel.NewUUID(),
		Status:    trip.Dispatched,
		CreatedAt: apiStart,
	}}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/trips?status=Dispatched", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	trips := decode[[]Trip](t, rec)
	require.Len(t, trips, 1)
	assert.Equal(t, id.String(), trips[0].ID.String())
	api.trips.AssertExpectations(t)
}

func TestListTrips_UnknownStatusIsRejectedBySchema(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/trips?status=Lost", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	api.trips.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListTrips_EmptyResultIsEmptyArray(t *testing.T) {
	api := newTestAPI(t)
	api.trips.On("Handle", mock.Anything, mock.Anything).Return([]queries.ListTripsQueryResponse{}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/trips", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListTrips_StoreFailureIsHidden(t *testing.T) {
	api := newTestAPI(t)
	api.trips.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection reset")).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/trips", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[Error](t, rec)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestListMaintenanceLogs_PassesFilters(t *testing.T) {
	api := newTestAPI(t)
	vehicleID := kernel.NewUUID()
	api.maintenance.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListMaintenanceLogsQuery) bool {
		return q.Status() == maintenance.Pending && q.VehicleID() != nil && q.VehicleID().IsEqual(vehicleID)
	})).Return([]queries.ListMaintenanceLogsQueryResponse{}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/maintenance-logs?status=Pending&vehicleId="+vehicleID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	api.maintenance.AssertExpectations(t)
}

func TestListVehiclesAndDrivers(t *testing.T) {
	api := newTestAPI(t)
	api.vehicles.On("Handle", mock.Anything, mock.Anything).Return([]queries.ListVehiclesQueryResponse{{
		ID:     kernel.NewUUID(),
		Name:   "Truck 1",
		Status: vehicle.Available,
	}}, nil).Once()
	api.drivers.On("Handle", mock.Anything, mock.Anything).Return([]queries.ListDriversQueryResponse{}, nil).Once()

	rec := api.do(t, http.MethodGet, "/api/v1/vehicles", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Available", decode[[]Vehicle](t, rec)[0].Status)

	rec = api.do(t, http.MethodGet, "/api/v1/drivers?status=Suspended", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSwaggerServesEmbeddedDocument(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FleetFlow")
}

func TestUnknownRouteUsesErrorBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/nowhere", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decode[Error](t, rec).Code)
}
