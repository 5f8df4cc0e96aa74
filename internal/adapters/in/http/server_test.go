package http_test

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

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publicCode = "ABCDEFGHJK1234567890MNPQRS"

func newRequest(t *testing.T) *shipment.Request {
	t.Helper()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	record, err := tracking.NewRecord(kernel.NewUUID(), publicCode[:tracking.InternalCodeLength], publicCode, now)
	require.NoError(t, err)
	parcel, err := shipment.NewParcel(2.5, nil, "books", "")
	require.NoError(t, err)

	req, err := shipment.NewRequest(shipment.Draft{
		ID:                kernel.NewUUID(),
		CreatorID:         kernel.NewUUID(),
		SenderID:          kernel.NewUUID(),
		RecipientID:       kernel.NewUUID(),
		BranchID:          kernel.NewUUID(),
		DeliveryAddressID: kernel.NewUUID(),
		Parcel:            parcel,
		Tracking:          record,
		CreatedAt:         now,
	})
	require.NoError(t, err)
	return req
}

func newBranch(t *testing.T, name string) *branch.Branch {
	t.Helper()

	loc, err := kernel.NewGeoPoint(4.60, -74.08)
	require.NoError(t, err)
	b, err := branch.NewBranch(kernel.NewUUID(), name, address.Details{Text: "Calle 1", City: "Bogota", Location: &loc})
	require.NoError(t, err)
	return b
}

func newTestEcho(t *testing.T, h httpadapter.Handlers) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpadapter.NewEcho(logger)
	require.NoError(t, err)
	httpadapter.NewServer(h, logger).Register(e)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func Test_Health(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{})

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func Test_CreateShipment(t *testing.T) {
	created := newRequest(t)
	var got commands.CreateShipmentRequestCommand
	e := newTestEcho(t, httpadapter.Handlers{
		CreateShipment: httpadapter.HandlerFunc[commands.CreateShipmentRequestCommand, *shipment.Request](
			func(_ context.Context, cmd commands.CreateShipmentRequestCommand) (*shipment.Request, error) {
				got = cmd
				return created, nil
			}),
	})

	body := `{
		"creatorId": "` + kernel.NewUUID().String() + `",
		"branchId": "` + kernel.NewUUID().String() + `",
		"sender": {"name": "Ana", "documentType": "CC", "documentNumber": "123"},
		"recipient": {"name": "Luis", "documentNumber": "456"},
		"deliveryAddress": {"text": "Calle 10 # 5-20", "city": "Bogota", "latitude": 4.6, "longitude": -74.1},
		"parcel": {"weightKg": 2.5, "dimensions": {"height": 10, "width": 20, "length": 30}},
		"scheduledDate": "2025-03-01",
		"timeWindow": "08:00-12:00"
	}`
	rec := do(e, http.MethodPost, "/api/v1/shipments", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[httpadapter.ShipmentResponse](t, rec)
	assert.Equal(t, created.ID().Bytes(), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, publicCode, resp.Tracking.PublicCode)
	assert.Nil(t, resp.DriverID)
	assert.Nil(t, resp.ManagerID)

	require.NoError(t, got.Validate())
	assert.Equal(t, "123", got.Sender().DocumentNumber)
	assert.Nil(t, got.PickupAddress())
	require.NotNil(t, got.DeliveryAddress().Location)
	assert.InDelta(t, 4.6, got.DeliveryAddress().Location.Latitude(), 1e-9)
	require.NotNil(t, got.Parcel().Dimensions())
	assert.InDelta(t, 30.0, got.Parcel().Dimensions().Length, 1e-9)
}

func Test_CreateShipment_RejectsInvalidBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"creatorId":`},
		{name: "missing creator", body: `{"branchId":"` + kernel.NewUUID().String() + `"}`},
		{
			name: "zero weight",
			body: `{"creatorId":"` + kernel.NewUUID().String() + `","branchId":"` + kernel.NewUUID().String() + `",
				"sender":{"name":"A","documentNumber":"1"},"recipient":{"name":"B","documentNumber":"2"},
				"deliveryAddress":{"text":"x"},"parcel":{"weightKg":0}}`,
		},
		{
			name: "latitude without longitude",
			body: `{"creatorId":"` + kernel.NewUUID().String() + `","branchId":"` + kernel.NewUUID().String() + `",
				"sender":{"name":"A","documentNumber":"1"},"recipient":{"name":"B","documentNumber":"2"},
				"deliveryAddress":{"text":"x","latitude":4.6},"parcel":{"weightKg":1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			e := newTestEcho(t, httpadapter.Handlers{
				CreateShipment: httpadapter.HandlerFunc[commands.CreateShipmentRequestCommand, *shipment.Request](
					func(context.Context, commands.CreateShipmentRequestCommand) (*shipment.Request, error) {
						called = true
						return nil, errors.New("must not be called")
					}),
			})

			rec := do(e, http.MethodPost, "/api/v1/shipments", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.False(t, called)
		})
	}
}

func Test_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: errs.NewObjectNotFoundError("request", "x"), status: http.StatusNotFound},
		{name: "invalid", err: errs.NewValueIsInvalidError("status"), status: http.StatusBadRequest},
		{name: "required", err: errs.NewValueIsRequiredError("driverId"), status: http.StatusBadRequest},
		{name: "conflict", err: errs.NewConflictError("branch", "x"), status: http.StatusConflict},
		{name: "unexpected", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{
				GetShipment: httpadapter.HandlerFunc[queries.GetShipmentRequestQuery, *shipment.Request](
					func(context.Context, queries.GetShipmentRequestQuery) (*shipment.Request, error) {
						return nil, tt.err
					}),
			})

			rec := do(e, http.MethodGet, "/api/v1/shipments/"+kernel.NewUUID().String(), "")

			assert.Equal(t, tt.status, rec.Code)
			resp := decode[httpadapter.ErrorResponse](t, rec)
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func Test_GetShipment_InvalidID(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/shipments/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_GetShipmentByTracking(t *testing.T) {
	found := newRequest(t)
	var gotCode string
	e := newTestEcho(t, httpadapter.Handlers{
		GetByTracking: httpadapter.HandlerFunc[queries.GetShipmentByTrackingNumberQuery, *shipment.Request](
			func(_ context.Context, q queries.GetShipmentByTrackingNumberQuery) (*shipment.Request, error) {
				gotCode = q.Code()
				return found, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/shipments/tracking/abcdefghjk", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ABCDEFGHJK", gotCode)
	assert.Equal(t, found.ID().Bytes(), decode[httpadapter.ShipmentResponse](t, rec).ID)
}

func Test_UpdateShipmentStatus(t *testing.T) {
	updated := newRequest(t)
	require.NoError(t, updated.AssignDriver(kernel.NewUUID(), kernel.NewUUID()))
	require.NoError(t, updated.ChangeStatus(shipment.InPickupRoute))
	var got commands.UpdateShipmentStatusCommand
	e := newTestEcho(t, httpadapter.Handlers{
		UpdateStatus: httpadapter.HandlerFunc[commands.UpdateShipmentStatusCommand, *shipment.Request](
			func(_ context.Context, cmd commands.UpdateShipmentStatusCommand) (*shipment.Request, error) {
				got = cmd
				return updated, nil
			}),
	})

	rec := do(e, http.MethodPatch, "/api/v1/shipments/"+updated.ID().String()+"/status", `{"status":"IN_PICKUP_ROUTE"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, shipment.InPickupRoute, got.Status())
	assert.Equal(t, "IN_PICKUP_ROUTE", decode[httpadapter.ShipmentResponse](t, rec).Status)
}

func Test_UpdateShipmentStatus_UnknownName(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{})

	rec := do(e, http.MethodPatch, "/api/v1/shipments/"+kernel.NewUUID().String()+"/status", `{"status":"LOST"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_AssignDriver(t *testing.T) {
	managerID, driverID := kernel.NewUUID(), kernel.NewUUID()
	assigned := newRequest(t)
	require.NoError(t, assigned.AssignDriver(managerID, driverID))
	e := newTestEcho(t, httpadapter.Handlers{
		AssignDriver: httpadapter.HandlerFunc[commands.AssignDriverCommand, *shipment.Request](
			func(_ context.Context, cmd commands.AssignDriverCommand) (*shipment.Request, error) {
				assert.True(t, cmd.ManagerID().IsEqual(managerID))
				assert.True(t, cmd.DriverID().IsEqual(driverID))
				return assigned, nil
			}),
	})

	body := `{"managerId":"` + managerID.String() + `","driverId":"` + driverID.String() + `"}`
	rec := do(e, http.MethodPost, "/api/v1/shipments/"+assigned.ID().String()+"/driver", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[httpadapter.ShipmentResponse](t, rec)
	assert.Equal(t, "ASSIGNED", resp.Status)
	require.NotNil(t, resp.DriverID)
	assert.Equal(t, driverID.Bytes(), *resp.DriverID)
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, managerID.Bytes(), *resp.ManagerID)
}

func Test_AssignManager_MissingID(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{})

	rec := do(e, http.MethodPost, "/api/v1/shipments/"+kernel.NewUUID().String()+"/manager", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_CancelShipment(t *testing.T) {
	cancelled := newRequest(t)
	require.NoError(t, cancelled.Cancel("customer request"))
	e := newTestEcho(t, httpadapter.Handlers{
		CancelShipment: httpadapter.HandlerFunc[commands.CancelShipmentRequestCommand, *shipment.Request](
			func(_ context.Context, cmd commands.CancelShipmentRequestCommand) (*shipment.Request, error) {
				assert.Equal(t, "customer request", cmd.Reason())
				return cancelled, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/shipments/"+cancelled.ID().String()+"/cancel", `{"reason":"customer request"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[httpadapter.ShipmentResponse](t, rec)
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, "customer request", resp.CancellationReason)
}

func Test_ListShipments_Filters(t *testing.T) {
	subject := kernel.NewUUID()
	tests := []struct {
		query  string
		filter queries.ListFilter
	}{
		{query: "client=" + subject.String(), filter: queries.ByClient},
		{query: "branch=" + subject.String(), filter: queries.ByBranch},
		{query: "branch=" + subject.String() + "&state=pending", filter: queries.PendingByBranch},
		{query: "branch=" + subject.String() + "&state=assigned", filter: queries.AssignedByBranch},
		{query: "driver=" + subject.String(), filter: queries.ByDriver},
		{query: "manager=" + subject.String(), filter: queries.ByManager},
		{query: "party=" + subject.String(), filter: queries.ByParty},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			var got queries.ListShipmentRequestsQuery
			e := newTestEcho(t, httpadapter.Handlers{
				ListShipments: httpadapter.HandlerFunc[queries.ListShipmentRequestsQuery, []queries.ShipmentRequestSummary](
					func(_ context.Context, q queries.ListShipmentRequestsQuery) ([]queries.ShipmentRequestSummary, error) {
						got = q
						return []queries.ShipmentRequestSummary{}, nil
					}),
			})

			rec := do(e, http.MethodGet, "/api/v1/shipments?"+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.filter, got.Filter())
			assert.True(t, got.SubjectID().IsEqual(subject))
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func Test_ListShipments_ByStatus(t *testing.T) {
	var got queries.ListShipmentRequestsQuery
	e := newTestEcho(t, httpadapter.Handlers{
		ListShipments: httpadapter.HandlerFunc[queries.ListShipmentRequestsQuery, []queries.ShipmentRequestSummary](
			func(_ context.Context, q queries.ListShipmentRequestsQuery) ([]queries.ShipmentRequestSummary, error) {
				got = q
				return []queries.ShipmentRequestSummary{}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/shipments?status=IN_DELIVERY_ROUTE", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, queries.ByStatus, got.Filter())
	assert.Equal(t, shipment.InDeliveryRoute, got.Status())
}

func Test_ListShipments_CreatedBetween(t *testing.T) {
	var got queries.ListShipmentRequestsQuery
	e := newTestEcho(t, httpadapter.Handlers{
		ListShipments: httpadapter.HandlerFunc[queries.ListShipmentRequestsQuery, []queries.ShipmentRequestSummary](
			func(_ context.Context, q queries.ListShipmentRequestsQuery) ([]queries.ShipmentRequestSummary, error) {
				got = q
				return []queries.ShipmentRequestSummary{}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/shipments?from=2025-03-01&to=2025-03-02T06:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, queries.CreatedBetween, got.Filter())
	from, to := got.Range()
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 2, 6, 0, 0, 0, time.UTC), to)
}

func Test_ListShipments_BadFilters(t *testing.T) {
	id := kernel.NewUUID().String()
	for _, query := range []string{
		"",
		"client=" + id + "&driver=" + id,
		"driver=" + id + "&state=pending",
		"branch=" + id + "&state=lost",
		"client=nope",
		"status=LOST",
		"status=PENDING&branch=" + id,
		"from=2025-03-01",
		"from=2025-03-02&to=2025-03-01",
		"from=yesterday&to=2025-03-01",
	} {
		t.Run(query, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{})

			rec := do(e, http.MethodGet, "/api/v1/shipments?"+query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func Test_GetActiveRoutes(t *testing.T) {
	routes := []*shipment.Request{newRequest(t), newRequest(t)}
	e := newTestEcho(t, httpadapter.Handlers{
		ActiveRoutes: httpadapter.HandlerFunc[queries.GetActiveRoutesForDriverQuery, []*shipment.Request](
			func(context.Context, queries.GetActiveRoutesForDriverQuery) ([]*shipment.Request, error) {
				return routes, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/drivers/"+kernel.NewUUID().String()+"/active-routes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]httpadapter.ShipmentResponse](t, rec), 2)
}

func Test_FindNearestBranch(t *testing.T) {
	a := newBranch(t, "A")
	var got queries.FindNearestBranchQuery
	e := newTestEcho(t, httpadapter.Handlers{
		FindNearest: httpadapter.HandlerFunc[queries.FindNearestBranchQuery, *branch.Branch](
			func(_ context.Context, q queries.FindNearestBranchQuery) (*branch.Branch, error) {
				got = q
				return a, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/branches/nearest?lat=4.65&lon=-74.10", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 4.65, got.Origin().Latitude(), 1e-9)
	assert.InDelta(t, -74.10, got.Origin().Longitude(), 1e-9)
	resp := decode[httpadapter.BranchResponse](t, rec)
	assert.Equal(t, "A", resp.Name)
	require.NotNil(t, resp.Address.Latitude)
	assert.InDelta(t, 4.60, *resp.Address.Latitude, 1e-9)
}

func Test_FindNearestBranch_BadParams(t *testing.T) {
	for _, query := range []string{"", "lat=4.65", "lat=abc&lon=1", "lat=95&lon=1"} {
		t.Run(query, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{
				FindNearest: httpadapter.HandlerFunc[queries.FindNearestBranchQuery, *branch.Branch](
					func(context.Context, queries.FindNearestBranchQuery) (*branch.Branch, error) {
						return nil, errors.New("must not be called")
					}),
			})

			rec := do(e, http.MethodGet, "/api/v1/branches/nearest?"+query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func Test_CreateBranch(t *testing.T) {
	created := newBranch(t, "Centro")
	e := newTestEcho(t, httpadapter.Handlers{
		CreateBranch: httpadapter.HandlerFunc[commands.CreateBranchCommand, *branch.Branch](
			func(_ context.Context, cmd commands.CreateBranchCommand) (*branch.Branch, error) {
				assert.Equal(t, "Centro", cmd.Name())
				assert.Equal(t, "Calle 1", cmd.Address().Text)
				return created, nil
			}),
	})

	rec := do(e, http.MethodPost, "/api/v1/branches",
		`{"name":"Centro","address":{"text":"Calle 1","city":"Bogota","latitude":4.6,"longitude":-74.08}}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, created.ID().Bytes(), decode[httpadapter.BranchResponse](t, rec).ID)
}

type deleteBranchFunc func(context.Context, commands.DeleteBranchCommand) error

func (f deleteBranchFunc) Handle(ctx context.Context, cmd commands.DeleteBranchCommand) error {
	return f(ctx, cmd)
}

func Test_DeleteBranch(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "referenced", err: errs.NewConflictError("branch", "x"), status: http.StatusConflict},
		{name: "unknown", err: errs.NewObjectNotFoundError("branch", "x"), status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{
				DeleteBranch: deleteBranchFunc(func(context.Context, commands.DeleteBranchCommand) error {
					return tt.err
				}),
			})

			rec := do(e, http.MethodDelete, "/api/v1/branches/"+kernel.NewUUID().String(), "")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func Test_ListBranches(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{
		ListBranches: httpadapter.HandlerFunc[queries.ListBranchesQuery, []*branch.Branch](
			func(context.Context, queries.ListBranchesQuery) ([]*branch.Branch, error) {
				return []*branch.Branch{newBranch(t, "A"), newBranch(t, "B")}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/branches", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]httpadapter.BranchResponse](t, rec)
	require.Len(t, resp, 2)
	assert.Equal(t, "A", resp[0].Name)
}

func Test_ListBranchStaff(t *testing.T) {
	b := newBranch(t, "Norte")
	driver, err := account.NewAccount(kernel.NewUUID(), "Pedro Ruiz", account.RoleDriver)
	require.NoError(t, err)
	require.NoError(t, driver.AttachToBranch(b.ID()))

	var got queries.ListBranchStaffQuery
	e := newTestEcho(t, httpadapter.Handlers{
		BranchStaff: httpadapter.HandlerFunc[queries.ListBranchStaffQuery, []*account.Account](
			func(_ context.Context, q queries.ListBranchStaffQuery) ([]*account.Account, error) {
				got = q
				return []*account.Account{driver}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/branches/"+b.ID().String()+"/staff?role=DRIVER", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, got.BranchID().IsEqual(b.ID()))
	assert.Equal(t, account.RoleDriver, got.Role())
	resp := decode[[]httpadapter.AccountResponse](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "Pedro Ruiz", resp[0].Name)
	assert.Equal(t, "DRIVER", resp[0].Role)
	require.NotNil(t, resp[0].BranchID)
	assert.Equal(t, b.ID().Bytes(), *resp[0].BranchID)
}

func Test_ListBranchStaff_BadRole(t *testing.T) {
	id := kernel.NewUUID().String()
	for _, query := range []string{"", "role=CLIENT", "role=PILOT"} {
		t.Run(query, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{})

			rec := do(e, http.MethodGet, "/api/v1/branches/"+id+"/staff?"+query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func Test_ProvisionAccount(t *testing.T) {
	id, branchID := kernel.NewUUID(), kernel.NewUUID()
	var got commands.ProvisionAccountCommand
	e := newTestEcho(t, httpadapter.Handlers{
		ProvisionAccount: httpadapter.HandlerFunc[commands.ProvisionAccountCommand, *account.Account](
			func(_ context.Context, cmd commands.ProvisionAccountCommand) (*account.Account, error) {
				got = cmd
				return cmd.Account(), nil
			}),
	})

	body := `{"id":"` + id.String() + `","name":"Marta Díaz","role":"MANAGER","branchId":"` + branchID.String() + `"}`
	rec := do(e, http.MethodPost, "/api/v1/accounts", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NoError(t, got.Validate())
	assert.True(t, got.Account().ID().IsEqual(id))
	resp := decode[httpadapter.AccountResponse](t, rec)
	assert.Equal(t, "MANAGER", resp.Role)
	require.NotNil(t, resp.BranchID)
	assert.Equal(t, branchID.Bytes(), *resp.BranchID)
}

func Test_ProvisionAccount_Rejected(t *testing.T) {
	id, branchID := kernel.NewUUID().String(), kernel.NewUUID().String()
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "unknown role", body: `{"id":"` + id + `","name":"X","role":"PILOT"}`, status: http.StatusBadRequest},
		{name: "client with branch", body: `{"id":"` + id + `","name":"X","role":"CLIENT","branchId":"` + branchID + `"}`, status: http.StatusBadRequest},
		{name: "bad id", body: `{"id":"nope","name":"X","role":"ADMIN"}`, status: http.StatusBadRequest},
		{
			name:   "id taken",
			body:   `{"id":"` + id + `","name":"X","role":"ADMIN"}`,
			err:    errs.NewConflictError("account", id),
			status: http.StatusConflict,
		},
		{
			name:   "unknown branch",
			body:   `{"id":"` + id + `","name":"X","role":"DRIVER","branchId":"` + branchID + `"}`,
			err:    errs.NewObjectNotFoundError("branch", branchID),
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, httpadapter.Handlers{
				ProvisionAccount: httpadapter.HandlerFunc[commands.ProvisionAccountCommand, *account.Account](
					func(context.Context, commands.ProvisionAccountCommand) (*account.Account, error) {
						if tt.err == nil {
							return nil, errors.New("must not be called")
						}
						return nil, tt.err
					}),
			})

			rec := do(e, http.MethodPost, "/api/v1/accounts", tt.body)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}
