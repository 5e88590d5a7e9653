package graph

// Schema is the service's GraphQL schema. Field and argument names keep the
// snake_case form of the federated marketplace schema so the admin frontend's
// existing queries keep working; shipmentByReference is the federation-style
// entity reference lookup.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	shipments: [Shipment!]!
	shipment(id: ID!): Shipment
	shipmentsByCustomer(customer_id: ID!): [Shipment!]!
	shipmentsByStatus(status: String!): [Shipment!]!
	shipmentsByVehicle(vehicle_id: ID!): [Shipment!]!
	trackingUpdates(shipment_id: ID!): [TrackingUpdate!]!
	shipmentByReference(shipment_id: ID!): Shipment
}

type Mutation {
	createShipment(
		customer_id: ID!
		origin_address: String!
		destination_address: String!
		S_type: String!
		weight: Float!
		status: String!
		vehicle_id: ID
	): Shipment!

	updateShipment(
		id: ID!
		origin_address: String
		destination_address: String
		S_type: String
		weight: Float
		status: String
		vehicle_id: ID
	): Shipment

	deleteShipment(id: ID!): Boolean!
}

type Shipment {
	shipment_id: ID!
	customer_id: ID!
	origin_address: String!
	destination_address: String!
	S_type: String!
	weight: Float!
	status: String!
	vehicle_id: ID
	created_at: String!
	customer: CustomerRef
	vehicle: VehicleRef
}

type CustomerRef {
	customer_id: ID!
}

type VehicleRef {
	vehicle_id: ID!
}

type TrackingUpdate {
	tracking_id: ID!
	shipment_id: ID!
	location: String!
	status: String!
	recipient_name: String!
	recipient_phone: String!
	recipient_address: String!
	item_name: String
	barcode: String
	created_at: String!
}
`
