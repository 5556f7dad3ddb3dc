package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
)

// orderJSON is the wire form of an order.
type orderJSON struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	DriverID   *string   `json:"driver_id"`
	Address    string    `json:"address"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// driverJSON is the wire form of a driver.
type driverJSON struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Phone              string     `json:"phone"`
	VehicleType        string     `json:"vehicle_type"`
	LicensePlate       string     `json:"license_plate"`
	Lat                *float64   `json:"lat"`
	Lng                *float64   `json:"lng"`
	Status             string     `json:"status"`
	LastLocationUpdate *time.Time `json:"last_location_update"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// customerJSON is the wire form of a customer.
type customerJSON struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	ChatHandle *int64    `json:"chat_id"`
	Address    *string   `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toOrderJSON(aggregate *order.Order) orderJSON {
	var driverID *string
	if id := aggregate.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	return orderJSON{
		ID:         aggregate.ID().String(),
		OrderID:    aggregate.ExternalID(),
		CustomerID: aggregate.CustomerID().String(),
		DriverID:   driverID,
		Address:    aggregate.Address(),
		Lat:        aggregate.Location().Lat(),
		Lng:        aggregate.Location().Lng(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func fromOrderResponse(response queries.OrderResponse) orderJSON {
	var driverID *string
	if response.DriverID != nil {
		s := response.DriverID.String()
		driverID = &s
	}

	return orderJSON{
		ID:         response.ID.String(),
		OrderID:    response.OrderID,
		CustomerID: response.CustomerID.String(),
		DriverID:   driverID,
		Address:    response.Address,
		Lat:        response.Location.Lat(),
		Lng:        response.Location.Lng(),
		Status:     response.Status,
		CreatedAt:  response.CreatedAt,
		UpdatedAt:  response.UpdatedAt,
	}
}

func toOrderListJSON(responses []queries.OrderResponse) []orderJSON {
	list := make([]orderJSON, len(responses))
	for i, response := range responses {
		list[i] = fromOrderResponse(response)
	}
	return list
}

func toDriverJSON(aggregate *driver.Driver) driverJSON {
	var lat, lng *float64
	if location := aggregate.Location(); location != nil {
		latValue, lngValue := location.Lat(), location.Lng()
		lat, lng = &latValue, &lngValue
	}

	return driverJSON{
		ID:                 aggregate.ID().String(),
		Name:               aggregate.Name(),
		Phone:              aggregate.Phone(),
		VehicleType:        aggregate.VehicleType(),
		LicensePlate:       aggregate.LicensePlate(),
		Lat:                lat,
		Lng:                lng,
		Status:             aggregate.Status().String(),
		LastLocationUpdate: aggregate.LastLocationUpdate(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

func fromDriverResponse(response queries.DriverResponse) driverJSON {
	var lat, lng *float64
	if response.Location != nil {
		latValue, lngValue := response.Location.Lat(), response.Location.Lng()
		lat, lng = &latValue, &lngValue
	}

	return driverJSON{
		ID:                 response.ID.String(),
		Name:               response.Name,
		Phone:              response.Phone,
		VehicleType:        response.VehicleType,
		LicensePlate:       response.LicensePlate,
		Lat:                lat,
		Lng:                lng,
		Status:             response.Status,
		LastLocationUpdate: response.LastLocationUpdate,
		CreatedAt:          response.CreatedAt,
		UpdatedAt:          response.UpdatedAt,
	}
}

func toDriverListJSON(responses []queries.DriverResponse) []driverJSON {
	list := make([]driverJSON, len(responses))
	for i, response := range responses {
		list[i] = fromDriverResponse(response)
	}
	return list
}

func toCustomerJSON(aggregate *customer.Customer) customerJSON {
	return customerJSON{
		ID:         aggregate.ID().String(),
		Name:       aggregate.Name(),
		Phone:      aggregate.Phone(),
		ChatHandle: aggregate.ChatHandle(),
		Address:    aggregate.Address(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func fromCustomerResponse(response queries.CustomerResponse) customerJSON {
	return customerJSON{
		ID:         response.ID.String(),
		Name:       response.Name,
		Phone:      response.Phone,
		ChatHandle: response.ChatHandle,
		Address:    response.Address,
		CreatedAt:  response.CreatedAt,
		UpdatedAt:  response.UpdatedAt,
	}
}

func toCustomerListJSON(responses []queries.CustomerResponse) []customerJSON {
	list := make([]customerJSON, len(responses))
	for i, response := range responses {
		list[i] = fromCustomerResponse(response)
	}
	return list
}
