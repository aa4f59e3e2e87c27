package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// Requests.

type OptimizeRouteRequest struct {
	ShipmentIDs   []uuid.UUID `json:"shipmentIds"   validate:"required"`
	VehicleID     uuid.UUID   `json:"vehicleId"     validate:"required"`
	DriverID      *uuid.UUID  `json:"driverId"`
	StartLocation string      `json:"startLocation"`
	StartLat      *float64    `json:"startLat"      validate:"required,gte=-90,lte=90"`
	StartLon      *float64    `json:"startLon"      validate:"required,gte=-180,lte=180"`
	Objective     string      `json:"objective"`
	PlannedStart  *time.Time  `json:"plannedStart"`
}

type AddressRequest struct {
	Text string   `json:"text" validate:"required"`
	Lat  *float64 `json:"lat"  validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `json:"lon"  validate:"omitempty,gte=-180,lte=180"`
}

type CreateShipmentRequest struct {
	CustomerID        uuid.UUID      `json:"customerId"        validate:"required"`
	Origin            AddressRequest `json:"origin"            validate:"required"`
	Destination       AddressRequest `json:"destination"       validate:"required"`
	Price             string         `json:"price"             validate:"required,numeric"`
	ExtraCharges      string         `json:"extraCharges"      validate:"omitempty,numeric"`
	Discount          string         `json:"discount"          validate:"omitempty,numeric"`
	EstimatedDelivery *time.Time     `json:"estimatedDelivery"`
}

type AssignShipmentRequest struct {
	VehicleID uuid.UUID  `json:"vehicleId" validate:"required"`
	DriverID  *uuid.UUID `json:"driverId"`
}

type AdvanceShipmentStatusRequest struct {
	Status        string   `json:"status"        validate:"required"`
	Notes         string   `json:"notes"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
	Address       string   `json:"address"`
	RecipientName string   `json:"recipientName"`
}

type CreateInvoiceRequest struct {
	CustomerID  uuid.UUID   `json:"customerId"  validate:"required"`
	ShipmentIDs []uuid.UUID `json:"shipmentIds" validate:"required,min=1"`
	IssueDate   string      `json:"issueDate"   validate:"required,datetime=2006-01-02"`
	DueDate     string      `json:"dueDate"     validate:"required,datetime=2006-01-02"`
	TaxRate     *string     `json:"taxRate"     validate:"omitempty,numeric"`
	Discount    string      `json:"discount"    validate:"omitempty,numeric"`
	Notes       string      `json:"notes"`
}

type MarkInvoicePaidRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type RegisterVehicleRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required"`
	CapacityKg  int    `json:"capacityKg"  validate:"gt=0"`
}

type RegisterDriverRequest struct {
	Name          string `json:"name"          validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

type RegisterCustomerRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type SetMaintenanceRequest struct {
	InMaintenance *bool `json:"inMaintenance" validate:"required"`
}

// Responses.

type RouteStop struct {
	ID                 uuid.UUID  `json:"id"`
	ShipmentID         uuid.UUID  `json:"shipmentId"`
	ShipmentReference  string     `json:"shipmentReference,omitempty"`
	Sequence           int        `json:"sequence"`
	Type               string     `json:"type"`
	EstimatedArrival   *time.Time `json:"estimatedArrival,omitempty"`
	ActualArrival      *time.Time `json:"actualArrival,omitempty"`
	ServiceTimeMinutes int        `json:"serviceTimeMinutes"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

type Route struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Status          string      `json:"status"`
	VehicleID       *uuid.UUID  `json:"vehicleId,omitempty"`
	DriverID        *uuid.UUID  `json:"driverId,omitempty"`
	StartLocation   string      `json:"startLocation"`
	StartLat        float64     `json:"startLat"`
	StartLon        float64     `json:"startLon"`
	TotalDistanceKm float64     `json:"totalDistanceKm"`
	DurationMinutes int         `json:"durationMinutes"`
	PlannedStart    *time.Time  `json:"plannedStart,omitempty"`
	PlannedEnd      *time.Time  `json:"plannedEnd,omitempty"`
	ActualStart     *time.Time  `json:"actualStart,omitempty"`
	ActualEnd       *time.Time  `json:"actualEnd,omitempty"`
	Stops           []RouteStop `json:"stops"`
}

type Address struct {
	Text string   `json:"text"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

type Shipment struct {
	ID                uuid.UUID  `json:"id"`
	Reference         string     `json:"reference"`
	TrackingToken     string     `json:"trackingToken"`
	CustomerID        uuid.UUID  `json:"customerId"`
	Origin            Address    `json:"origin"`
	Destination       Address    `json:"destination"`
	Price             string     `json:"price"`
	ExtraCharges      string     `json:"extraCharges"`
	Discount          string     `json:"discount"`
	TotalPrice        string     `json:"totalPrice"`
	Status            string     `json:"status"`
	VehicleID         *uuid.UUID `json:"vehicleId,omitempty"`
	DriverID          *uuid.UUID `json:"driverId,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time `json:"actualDelivery,omitempty"`
	RecipientName     string     `json:"recipientName,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// PendingShipment is the list view of a shipment awaiting dispatch.
type PendingShipment struct {
	ID                uuid.UUID  `json:"id"`
	Reference         string     `json:"reference"`
	CustomerID        uuid.UUID  `json:"customerId"`
	Origin            string     `json:"origin"`
	Destination       Address    `json:"destination"`
	Status            string     `json:"status"`
	VehicleID         *uuid.UUID `json:"vehicleId,omitempty"`
	DriverID          *uuid.UUID `json:"driverId,omitempty"`
	TotalPrice        string     `json:"totalPrice"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type InvoiceItem struct {
	ID          uuid.UUID  `json:"id"`
	ShipmentID  *uuid.UUID `json:"shipmentId,omitempty"`
	Description string     `json:"description"`
	Quantity    int        `json:"quantity"`
	UnitPrice   string     `json:"unitPrice"`
	Total       string     `json:"total"`
}

type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	Number        string        `json:"number"`
	CustomerID    uuid.UUID     `json:"customerId"`
	Status        string        `json:"status"`
	IssueDate     string        `json:"issueDate"`
	DueDate       string        `json:"dueDate"`
	PaidDate      *time.Time    `json:"paidDate,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      string        `json:"subtotal"`
	TaxRate       string        `json:"taxRate"`
	TaxAmount     string        `json:"taxAmount"`
	Discount      string        `json:"discount"`
	Total         string        `json:"total"`
	Notes         string        `json:"notes,omitempty"`
}

type Vehicle struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	CapacityKg  int       `json:"capacityKg"`
	Status      string    `json:"status"`
}

type Driver struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	LicenseNumber        string    `json:"licenseNumber"`
	Available            bool      `json:"available"`
	TotalDeliveries      int       `json:"totalDeliveries"`
	SuccessfulDeliveries int       `json:"successfulDeliveries"`
	SuccessRate          float64   `json:"successRate"`
}

type Customer struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	TotalShipments int       `json:"totalShipments"`
	TotalRevenue   string    `json:"totalRevenue"`
}

const dateLayout = "2006-01-02"

func idPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toRoute(r *route.Route) Route {
	resp := Route{
		ID:              r.ID().Bytes(),
		Name:            r.Name(),
		Status:          r.Status().String(),
		VehicleID:       idPtr(r.VehicleID()),
		DriverID:        idPtr(r.DriverID()),
		StartLocation:   r.StartLocation(),
		StartLat:        r.StartPoint().Lat(),
		StartLon:        r.StartPoint().Lon(),
		TotalDistanceKm: r.Metrics().TotalDistanceKm,
		DurationMinutes: r.Metrics().DurationMinutes,
		PlannedStart:    r.PlannedStart(),
		PlannedEnd:      r.PlannedEnd(),
		ActualStart:     r.ActualStart(),
		ActualEnd:       r.ActualEnd(),
		Stops:           make([]RouteStop, 0, r.StopCount()),
	}
	for _, s := range r.Stops() {
		resp.Stops = append(resp.Stops, RouteStop{
			ID:                 s.ID().Bytes(),
			ShipmentID:         s.ShipmentID().Bytes(),
			Sequence:           s.Sequence(),
			Type:               s.Type().String(),
			EstimatedArrival:   s.EstimatedArrival(),
			ActualArrival:      s.ActualArrival(),
			ServiceTimeMinutes: s.ServiceTimeMinutes(),
			Completed:          s.IsCompleted(),
			CompletedAt:        s.CompletedAt(),
		})
	}
	return resp
}

func toRouteFromQuery(r *queries.GetRouteQueryResponse) Route {
	resp := Route{
		ID:              r.ID.Bytes(),
		Name:            r.Name,
		Status:          r.Status,
		VehicleID:       idPtr(r.VehicleID),
		DriverID:        idPtr(r.DriverID),
		StartLocation:   r.StartLocation,
		StartLat:        r.StartPoint.Lat(),
		StartLon:        r.StartPoint.Lon(),
		TotalDistanceKm: r.TotalDistanceKm,
		DurationMinutes: r.DurationMinutes,
		PlannedStart:    r.PlannedStart,
		PlannedEnd:      r.PlannedEnd,
		ActualStart:     r.ActualStart,
		ActualEnd:       r.ActualEnd,
		Stops:           make([]RouteStop, 0, len(r.Stops)),
	}
	for _, s := range r.Stops {
		resp.Stops = append(resp.Stops, RouteStop{
			ID:                 s.ID.Bytes(),
			ShipmentID:         s.ShipmentID.Bytes(),
			ShipmentReference:  s.ShipmentReference,
			Sequence:           s.Sequence,
			Type:               s.Type,
			EstimatedArrival:   s.EstimatedArrival,
			ActualArrival:      s.ActualArrival,
			ServiceTimeMinutes: s.ServiceTimeMinutes,
			Completed:          s.Completed,
			CompletedAt:        s.CompletedAt,
		})
	}
	return resp
}

func toAddress(a shipment.Address) Address {
	out := Address{Text: a.Text()}
	if p := a.Point(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		out.Lat, out.Lon = &lat, &lon
	}
	return out
}

func toShipment(s *shipment.Shipment) Shipment {
	p := s.Pricing()
	return Shipment{
		ID:                s.ID().Bytes(),
		Reference:         s.Reference().String(),
		TrackingToken:     s.TrackingToken().String(),
		CustomerID:        s.CustomerID().Bytes(),
		Origin:            toAddress(s.Origin()),
		Destination:       toAddress(s.Destination()),
		Price:             p.Price().String(),
		ExtraCharges:      p.ExtraCharges().String(),
		Discount:          p.Discount().String(),
		TotalPrice:        s.TotalPrice().String(),
		Status:            s.Status().String(),
		VehicleID:         idPtr(s.VehicleID()),
		DriverID:          idPtr(s.DriverID()),
		EstimatedDelivery: s.EstimatedDelivery(),
		ActualDelivery:    s.ActualDelivery(),
		RecipientName:     s.RecipientName(),
		CreatedAt:         s.CreatedAt(),
	}
}

func toInvoice(i *invoice.Invoice) Invoice {
	resp := Invoice{
		ID:         i.ID().Bytes(),
		Number:     i.Number().String(),
		CustomerID: i.CustomerID().Bytes(),
		Status:     i.Status().String(),
		IssueDate:  i.IssueDate().Format(dateLayout),
		DueDate:    i.DueDate().Format(dateLayout),
		PaidDate:   i.PaidDate(),
		Items:      make([]InvoiceItem, 0),
		Subtotal:   i.Subtotal().String(),
		TaxRate:    i.TaxRate().StringFixed(2),
		TaxAmount:  i.TaxAmount().String(),
		Discount:   i.Discount().String(),
		Total:      i.Total().String(),
		Notes:      i.Notes(),
	}
	if i.Status() == invoice.Paid {
		resp.PaymentMethod = i.PaymentMethod().String()
	}
	for _, item := range i.Items() {
		resp.Items = append(resp.Items, InvoiceItem{
			ID:          item.ID().Bytes(),
			ShipmentID:  idPtr(item.ShipmentID()),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Total:       item.Total().String(),
		})
	}
	return resp
}

func toVehicle(v *vehicle.Vehicle) Vehicle {
	return Vehicle{
		ID:          v.ID().Bytes(),
		PlateNumber: v.PlateNumber(),
		CapacityKg:  v.CapacityKg(),
		Status:      v.Status().String(),
	}
}

func toDriver(d *driver.Driver) Driver {
	return Driver{
		ID:                   d.ID().Bytes(),
		Name:                 d.Name(),
		LicenseNumber:        d.LicenseNumber(),
		Available:            d.IsAvailable(),
		TotalDeliveries:      d.TotalDeliveries(),
		SuccessfulDeliveries: d.SuccessfulDeliveries(),
		SuccessRate:          d.SuccessRate(),
	}
}

func toCustomer(c *customer.Customer) Customer {
	return Customer{
		ID:             c.ID().Bytes(),
		Name:           c.Name(),
		Email:          c.Email(),
		TotalShipments: c.TotalShipments(),
		TotalRevenue:   c.TotalRevenue().String(),
	}
}

func toAvailableVehicles(rows []queries.GetAvailableVehiclesQueryResponse) []Vehicle {
	out := make([]Vehicle, 0, len(rows))
	for _, v := range rows {
		out = append(out, Vehicle{
			ID:          v.ID.Bytes(),
			PlateNumber: v.PlateNumber,
			CapacityKg:  v.CapacityKg,
			Status:      vehicle.Idle.String(),
		})
	}
	return out
}

func toAvailableDrivers(rows []queries.GetAvailableDriversQueryResponse) []Driver {
	out := make([]Driver, 0, len(rows))
	for _, d := range rows {
		out = append(out, Driver{
			ID:                   d.ID.Bytes(),
			Name:                 d.Name,
			LicenseNumber:        d.LicenseNumber,
			Available:            true,
			TotalDeliveries:      d.TotalDeliveries,
			SuccessfulDeliveries: d.SuccessfulDeliveries,
			SuccessRate:          d.SuccessRate,
		})
	}
	return out
}

func toPendingShipments(rows []queries.GetPendingShipmentsQueryResponse) []PendingShipment {
	out := make([]PendingShipment, 0, len(rows))
	for _, s := range rows {
		dest := Address{Text: s.Destination}
		if p := s.DestinationPoint; p != nil {
			lat, lon := p.Lat(), p.Lon()
			dest.Lat, dest.Lon = &lat, &lon
		}
		out = append(out, PendingShipment{
			ID:                s.ID.Bytes(),
			Reference:         s.Reference,
			CustomerID:        s.CustomerID.Bytes(),
			Origin:            s.Origin,
			Destination:       dest,
			Status:            s.Status,
			VehicleID:         idPtr(s.VehicleID),
			DriverID:          idPtr(s.DriverID),
			TotalPrice:        s.TotalPrice.String(),
			EstimatedDelivery: s.EstimatedDelivery,
			CreatedAt:         s.CreatedAt,
		})
	}
	return out
}
