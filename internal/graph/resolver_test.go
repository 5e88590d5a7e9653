package graph

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/logimart/shipment-service/internal/core/domain"
	"github.com/logimart/shipment-service/internal/core/ports"
)

// ---- stub service ----

type stubService struct {
	shipments map[int64]domain.Shipment
	tracking  map[int64][]domain.TrackingUpdate

	lastCreate ports.CreateShipmentInput
	lastUpdate ports.ShipmentUpdate
	deleted    []int64
}

func newStubService() *stubService {
	return &stubService{
		shipments: make(map[int64]domain.Shipment),
		tracking:  make(map[int64][]domain.TrackingUpdate),
	}
}

func (s *stubService) CreateShipment(_ context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	s.lastCreate = input
	created := domain.Shipment{
		ID:                 101,
		CustomerID:         input.CustomerID,
		OriginAddress:      input.OriginAddress,
		DestinationAddress: input.DestinationAddress,
		Type:               input.Type,
		Weight:             input.Weight,
		Status:             input.Status,
		VehicleID:          input.VehicleID,
		CreatedAt:          time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	s.shipments[created.ID] = created
	return &created, nil
}

func (s *stubService) GetShipment(_ context.Context, id int64) (*domain.Shipment, error) {
	sh, ok := s.shipments[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return &sh, nil
}

func (s *stubService) ListShipments(context.Context) ([]domain.Shipment, error) {
	out := make([]domain.Shipment, 0, len(s.shipments))
	for _, sh := range s.shipments {
		out = append(out, sh)
	}
	return out, nil
}

func (s *stubService) ListShipmentsByCustomer(_ context.Context, customerID int64) ([]domain.Shipment, error) {
	var out []domain.Shipment
	for _, sh := range s.shipments {
		if sh.CustomerID == customerID {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (s *stubService) ListShipmentsByStatus(_ context.Context, status string) ([]domain.Shipment, error) {
	var out []domain.Shipment
	for _, sh := range s.shipments {
		if sh.Status == status {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (s *stubService) ListShipmentsByVehicle(_ context.Context, vehicleID int64) ([]domain.Shipment, error) {
	var out []domain.Shipment
	for _, sh := range s.shipments {
		if sh.VehicleID != nil && *sh.VehicleID == vehicleID {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (s *stubService) UpdateShipment(_ context.Context, id int64, upd ports.ShipmentUpdate) (*domain.Shipment, error) {
	s.lastUpdate = upd
	sh, ok := s.shipments[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	if upd.Status != nil {
		sh.Status = *upd.Status
	}
	s.shipments[id] = sh
	return &sh, nil
}

func (s *stubService) DeleteShipment(_ context.Context, id int64) (bool, error) {
	s.deleted = append(s.deleted, id)
	_, ok := s.shipments[id]
	delete(s.shipments, id)
	return ok, nil
}

func (s *stubService) TrackingUpdates(_ context.Context, shipmentID int64) ([]domain.TrackingUpdate, error) {
	return s.tracking[shipmentID], nil
}

// ---- helpers ----

func mustSchema(t *testing.T, svc ports.ShipmentService) *graphql.Schema {
	t.Helper()
	return graphql.MustParseSchema(Schema, NewResolver(svc, zerolog.Nop()))
}

func exec(t *testing.T, schema *graphql.Schema, query string, vars map[string]any) map[string]any {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", vars)
	if len(resp.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
	var data map[string]any
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decoding response data: %v", err)
	}
	return data
}

func ptrInt64(v int64) *int64 { return &v }

// ---- schema ----

func TestSchemaParsesAgainstResolver(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("schema does not match resolver: %v", r)
		}
	}()
	mustSchema(t, newStubService())
}

// ---- queries ----

func TestShipmentQuery(t *testing.T) {
	svc := newStubService()
	svc.shipments[7] = domain.Shipment{
		ID:                 7,
		CustomerID:         3,
		OriginAddress:      "Warehouse A",
		DestinationAddress: "Customer St 12",
		Type:               "express",
		Weight:             2.5,
		Status:             "pending",
		VehicleID:          ptrInt64(40),
		CreatedAt:          time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
	}
	schema := mustSchema(t, svc)

	data := exec(t, schema, `{
		shipment(id: "7") {
			shipment_id
			customer_id
			S_type
			weight
			status
			vehicle_id
			created_at
			customer { customer_id }
			vehicle { vehicle_id }
		}
	}`, nil)

	sh := data["shipment"].(map[string]any)
	if sh["shipment_id"] != "7" || sh["customer_id"] != "3" {
		t.Fatalf("unexpected ids: %v", sh)
	}
	if sh["S_type"] != "express" || sh["weight"] != 2.5 || sh["status"] != "pending" {
		t.Fatalf("unexpected fields: %v", sh)
	}
	if sh["vehicle_id"] != "40" {
		t.Fatalf("vehicle_id = %v, want 40", sh["vehicle_id"])
	}
	if sh["created_at"] != "2024-05-01T08:30:00Z" {
		t.Fatalf("created_at = %v", sh["created_at"])
	}
	if sh["customer"].(map[string]any)["customer_id"] != "3" {
		t.Fatalf("customer ref not populated: %v", sh["customer"])
	}
	if sh["vehicle"].(map[string]any)["vehicle_id"] != "40" {
		t.Fatalf("vehicle ref not populated: %v", sh["vehicle"])
	}
}

func TestShipmentQueryNotFoundIsNull(t *testing.T) {
	schema := mustSchema(t, newStubService())

	data := exec(t, schema, `{ shipment(id: "999") { shipment_id } }`, nil)
	if data["shipment"] != nil {
		t.Fatalf("shipment = %v, want null", data["shipment"])
	}
}

func TestShipmentQueryRejectsNonNumericID(t *testing.T) {
	schema := mustSchema(t, newStubService())

	resp := schema.Exec(context.Background(), `{ shipment(id: "abc") { shipment_id } }`, "", nil)
	if len(resp.Errors) == 0 {
		t.Fatal("expected an error for a non-numeric id")
	}
	if !strings.Contains(resp.Errors[0].Error(), "must be numeric") {
		t.Fatalf("unexpected error: %v", resp.Errors[0])
	}
}

func TestShipmentByReferenceQuery(t *testing.T) {
	svc := newStubService()
	svc.shipments[11] = domain.Shipment{ID: 11, CustomerID: 2, Status: "in_transit"}
	schema := mustSchema(t, svc)

	data := exec(t, schema, `{ shipmentByReference(shipment_id: "11") { shipment_id status } }`, nil)
	sh := data["shipmentByReference"].(map[string]any)
	if sh["shipment_id"] != "11" || sh["status"] != "in_transit" {
		t.Fatalf("unexpected reference result: %v", sh)
	}
}

func TestTrackingUpdatesQuery(t *testing.T) {
	item := "Order 99 - Total 150000"
	barcode := "PAY-55"
	svc := newStubService()
	svc.tracking[7] = []domain.TrackingUpdate{
		{
			ID:               1,
			ShipmentID:       7,
			Location:         domain.LocationOrderReceived,
			Status:           "pending",
			RecipientName:    "Ana",
			RecipientPhone:   "-",
			RecipientAddress: "Customer St 12",
			ItemName:         &item,
			Barcode:          &barcode,
			CreatedAt:        time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		},
		{ID: 2, ShipmentID: 7, Location: "Hub Norte", Status: "in_transit", RecipientName: "Ana"},
	}
	schema := mustSchema(t, svc)

	data := exec(t, schema, `{
		trackingUpdates(shipment_id: "7") {
			tracking_id
			location
			item_name
			barcode
		}
	}`, nil)

	updates := data["trackingUpdates"].([]any)
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	first := updates[0].(map[string]any)
	if first["location"] != domain.LocationOrderReceived {
		t.Fatalf("location = %v", first["location"])
	}
	if first["item_name"] != item || first["barcode"] != barcode {
		t.Fatalf("enrichment fields = %v / %v", first["item_name"], first["barcode"])
	}
	second := updates[1].(map[string]any)
	if second["item_name"] != nil || second["barcode"] != nil {
		t.Fatalf("expected null enrichment on later update: %v", second)
	}
}

// ---- mutations ----

func TestCreateShipmentMutation(t *testing.T) {
	svc := newStubService()
	schema := mustSchema(t, svc)

	data := exec(t, schema, `mutation(
		$customer: ID!, $origin: String!, $dest: String!,
		$type: String!, $weight: Float!, $status: String!, $vehicle: ID
	) {
		createShipment(
			customer_id: $customer
			origin_address: $origin
			destination_address: $dest
			S_type: $type
			weight: $weight
			status: $status
			vehicle_id: $vehicle
		) {
			shipment_id
			status
		}
	}`, map[string]any{
		"customer": "3",
		"origin":   "Warehouse A",
		"dest":     "Customer St 12",
		"type":     "express",
		"weight":   2.5,
		"status":   "pending",
		"vehicle":  "40",
	})

	created := data["createShipment"].(map[string]any)
	if created["shipment_id"] != "101" || created["status"] != "pending" {
		t.Fatalf("unexpected mutation result: %v", created)
	}

	in := svc.lastCreate
	if in.CustomerID != 3 || in.Type != "express" || in.Weight != 2.5 {
		t.Fatalf("service received wrong input: %+v", in)
	}
	if in.VehicleID == nil || *in.VehicleID != 40 {
		t.Fatalf("vehicle id not forwarded: %+v", in.VehicleID)
	}
}

func TestCreateShipmentRejectsNonPositiveWeight(t *testing.T) {
	schema := mustSchema(t, newStubService())

	resp := schema.Exec(context.Background(), `mutation {
		createShipment(
			customer_id: "3"
			origin_address: "A"
			destination_address: "B"
			S_type: "standard"
			weight: 0
			status: "pending"
		) { shipment_id }
	}`, "", nil)

	if len(resp.Errors) == 0 {
		t.Fatal("expected a validation error for weight 0")
	}
	if !strings.Contains(resp.Errors[0].Error(), "weight") {
		t.Fatalf("error does not mention weight: %v", resp.Errors[0])
	}
}

func TestUpdateShipmentForwardsOnlyProvidedFields(t *testing.T) {
	svc := newStubService()
	svc.shipments[7] = domain.Shipment{ID: 7, CustomerID: 3, Status: "pending"}
	schema := mustSchema(t, svc)

	data := exec(t, schema, `mutation {
		updateShipment(id: "7", status: "delivered") { shipment_id status }
	}`, nil)

	updated := data["updateShipment"].(map[string]any)
	if updated["status"] != "delivered" {
		t.Fatalf("status = %v, want delivered", updated["status"])
	}

	upd := svc.lastUpdate
	if upd.Status == nil || *upd.Status != "delivered" {
		t.Fatalf("status not forwarded: %+v", upd)
	}
	if upd.OriginAddress != nil || upd.DestinationAddress != nil || upd.Type != nil || upd.Weight != nil || upd.VehicleID != nil {
		t.Fatalf("omitted fields must stay nil: %+v", upd)
	}
}

func TestUpdateShipmentNotFoundIsNull(t *testing.T) {
	schema := mustSchema(t, newStubService())

	data := exec(t, schema, `mutation { updateShipment(id: "404", status: "x") { shipment_id } }`, nil)
	if data["updateShipment"] != nil {
		t.Fatalf("updateShipment = %v, want null", data["updateShipment"])
	}
}

func TestDeleteShipmentMutation(t *testing.T) {
	svc := newStubService()
	svc.shipments[7] = domain.Shipment{ID: 7}
	schema := mustSchema(t, svc)

	data := exec(t, schema, `mutation { deleteShipment(id: "7") }`, nil)
	if data["deleteShipment"] != true {
		t.Fatalf("deleteShipment = %v, want true", data["deleteShipment"])
	}

	data = exec(t, schema, `mutation { deleteShipment(id: "7") }`, nil)
	if data["deleteShipment"] != false {
		t.Fatalf("second delete = %v, want false", data["deleteShipment"])
	}
}
