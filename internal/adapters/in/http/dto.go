package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/party"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type PartyRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	DocumentType   string `json:"documentType" validate:"max=20"`
	DocumentNumber string `json:"documentNumber" validate:"required,max=50"`
	Phone          string `json:"phone" validate:"max=30"`
	CountryCode    string `json:"countryCode" validate:"omitempty,max=3"`
}

func (r PartyRequest) details() party.Details {
	return party.Details{
		Name:           r.Name,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		CountryCode:    r.CountryCode,
	}
}

type AddressRequest struct {
	Text         string   `json:"text" validate:"required,max=300"`
	City         string   `json:"city" validate:"max=100"`
	Latitude     *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	Floor        string   `json:"floor" validate:"max=50"`
	Notes        string   `json:"notes" validate:"max=500"`
	Neighborhood string   `json:"neighborhood" validate:"max=100"`
	PostalCode   string   `json:"postalCode" validate:"max=20"`
	Kind         string   `json:"kind" validate:"max=50"`
}

func (r AddressRequest) details() (address.Details, error) {
	loc, err := kernel.NewOptionalGeoPoint(r.Latitude, r.Longitude)
	if err != nil {
		return address.Details{}, err
	}

	return address.Details{
		Text:         r.Text,
		City:         r.City,
		Location:     loc,
		Floor:        r.Floor,
		Notes:        r.Notes,
		Neighborhood: r.Neighborhood,
		PostalCode:   r.PostalCode,
		Kind:         r.Kind,
	}, nil
}

type DimensionsRequest struct {
	Height float64 `json:"height" validate:"gt=0"`
	Width  float64 `json:"width" validate:"gt=0"`
	Length float64 `json:"length" validate:"gt=0"`
}

type ParcelRequest struct {
	WeightKg   float64            `json:"weightKg" validate:"gt=0"`
	Dimensions *DimensionsRequest `json:"dimensions"`
	Content    string             `json:"content" validate:"max=300"`
	Category   string             `json:"category" validate:"max=100"`
}

func (r ParcelRequest) parcel() (shipment.Parcel, error) {
	var dims *shipment.Dimensions
	if r.Dimensions != nil {
		dims = &shipment.Dimensions{
			Height: r.Dimensions.Height,
			Width:  r.Dimensions.Width,
			Length: r.Dimensions.Length,
		}
	}
	return shipment.NewParcel(r.WeightKg, dims, r.Content, r.Category)
}

type CreateShipmentRequest struct {
	CreatorID       string          `json:"creatorId" validate:"required,uuid"`
	BranchID        string          `json:"branchId" validate:"required,uuid"`
	Sender          PartyRequest    `json:"sender"`
	Recipient       PartyRequest    `json:"recipient"`
	PickupAddress   *AddressRequest `json:"pickupAddress"`
	DeliveryAddress AddressRequest  `json:"deliveryAddress"`
	Parcel          ParcelRequest   `json:"parcel"`
	ScheduledDate   string          `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
	TimeWindow      string          `json:"timeWindow" validate:"max=50"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type AssignManagerRequest struct {
	ManagerID string `json:"managerId" validate:"required,uuid"`
}

type AssignDriverRequest struct {
	ManagerID string `json:"managerId" validate:"required,uuid"`
	DriverID  string `json:"driverId" validate:"required,uuid"`
}

type AssignCollectorRequest struct {
	CollectorID string `json:"collectorId" validate:"required,uuid"`
}

type ProvisionAccountRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required"`
	BranchID string `json:"branchId" validate:"omitempty,uuid"`
}

type BranchRequest struct {
	Name    string         `json:"name" validate:"required,max=150"`
	Address AddressRequest `json:"address"`
}

type TrackingResponse struct {
	PublicCode   string `json:"publicCode"`
	InternalCode string `json:"internalCode"`
}

type DimensionsResponse struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

type ParcelResponse struct {
	WeightKg   float64             `json:"weightKg"`
	Dimensions *DimensionsResponse `json:"dimensions,omitempty"`
	Content    string              `json:"content,omitempty"`
	Category   string              `json:"category,omitempty"`
}

type ShipmentResponse struct {
	ID                 uuid.UUID        `json:"id"`
	CreatorID          uuid.UUID        `json:"creatorId"`
	SenderID           uuid.UUID        `json:"senderId"`
	RecipientID        uuid.UUID        `json:"recipientId"`
	BranchID           uuid.UUID        `json:"branchId"`
	PickupAddressID    *uuid.UUID       `json:"pickupAddressId,omitempty"`
	DeliveryAddressID  uuid.UUID        `json:"deliveryAddressId"`
	Tracking           TrackingResponse `json:"tracking"`
	Parcel             ParcelResponse   `json:"parcel"`
	DriverID           *uuid.UUID       `json:"driverId,omitempty"`
	ManagerID          *uuid.UUID       `json:"managerId,omitempty"`
	Status             string           `json:"status"`
	CancellationReason string           `json:"cancellationReason,omitempty"`
	ScheduledDate      string           `json:"scheduledDate,omitempty"`
	TimeWindow         string           `json:"timeWindow,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func toShipmentResponse(r *shipment.Request) ShipmentResponse {
	p := r.Parcel()
	parcel := ParcelResponse{
		WeightKg: p.WeightKg(),
		Content:  p.Content(),
		Category: p.Category(),
	}
	if d := p.Dimensions(); d != nil {
		parcel.Dimensions = &DimensionsResponse{Height: d.Height, Width: d.Width, Length: d.Length}
	}

	return ShipmentResponse{
		ID:                r.ID().Bytes(),
		CreatorID:         r.CreatorID().Bytes(),
		SenderID:          r.SenderID().Bytes(),
		RecipientID:       r.RecipientID().Bytes(),
		BranchID:          r.BranchID().Bytes(),
		PickupAddressID:   kernel.OptionalBytes(r.PickupAddressID()),
		DeliveryAddressID: r.DeliveryAddressID().Bytes(),
		Tracking: TrackingResponse{
			PublicCode:   r.Tracking().PublicCode(),
			InternalCode: r.Tracking().InternalCode(),
		},
		Parcel:             parcel,
		DriverID:           kernel.OptionalBytes(r.DriverID()),
		ManagerID:          kernel.OptionalBytes(r.ManagerID()),
		Status:             r.Status().String(),
		CancellationReason: r.CancellationReason(),
		ScheduledDate:      r.ScheduledDate(),
		TimeWindow:         r.TimeWindow(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func toShipmentResponses(requests []*shipment.Request) []ShipmentResponse {
	out := make([]ShipmentResponse, len(requests))
	for i, r := range requests {
		out[i] = toShipmentResponse(r)
	}
	return out
}

type ShipmentSummaryResponse struct {
	ID            uuid.UUID  `json:"id"`
	PublicCode    string     `json:"publicCode"`
	Status        string     `json:"status"`
	BranchID      uuid.UUID  `json:"branchId"`
	SenderName    string     `json:"senderName"`
	RecipientName string     `json:"recipientName"`
	DriverID      *uuid.UUID `json:"driverId,omitempty"`
	ManagerID     *uuid.UUID `json:"managerId,omitempty"`
	ScheduledDate string     `json:"scheduledDate,omitempty"`
	TimeWindow    string     `json:"timeWindow,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toSummaryResponses(summaries []queries.ShipmentRequestSummary) []ShipmentSummaryResponse {
	out := make([]ShipmentSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = ShipmentSummaryResponse{
			ID:            s.ID.Bytes(),
			PublicCode:    s.PublicCode,
			Status:        s.Status.String(),
			BranchID:      s.BranchID.Bytes(),
			SenderName:    s.SenderName,
			RecipientName: s.RecipientName,
			DriverID:      kernel.OptionalBytes(s.DriverID),
			ManagerID:     kernel.OptionalBytes(s.ManagerID),
			ScheduledDate: s.ScheduledDate,
			TimeWindow:    s.TimeWindow,
			CreatedAt:     s.CreatedAt,
		}
	}
	return out
}

type AddressResponse struct {
	ID           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	City         string    `json:"city"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Floor        string    `json:"floor,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Kind         string    `json:"kind,omitempty"`
}

type BranchResponse struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Address AddressResponse `json:"address"`
}

func toBranchResponse(b *branch.Branch) BranchResponse {
	a := b.Address()
	resp := BranchResponse{
		ID:   b.ID().Bytes(),
		Name: b.Name(),
		Address: AddressResponse{
			ID:           a.ID().Bytes(),
			Text:         a.Text(),
			City:         a.City(),
			Floor:        a.Floor(),
			Notes:        a.Notes(),
			Neighborhood: a.Neighborhood(),
			PostalCode:   a.PostalCode(),
			Kind:         a.Kind(),
		},
	}
	if loc := a.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		resp.Address.Latitude, resp.Address.Longitude = &lat, &lon
	}
	return resp
}

func toBranchResponses(branches []*branch.Branch) []BranchResponse {
	out := make([]BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = toBranchResponse(b)
	}
	return out
}

type AccountResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Role     string     `json:"role"`
	BranchID *uuid.UUID `json:"branchId,omitempty"`
}

func toAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID().Bytes(),
		Name:     a.Name(),
		Role:     string(a.Role()),
		BranchID: kernel.OptionalBytes(a.BranchID()),
	}
}

func toAccountResponses(accounts []*account.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	return out
}
