package rest

import (
	"github.com/ngoclaithe/camerental/domain/customer"
	"github.com/ngoclaithe/camerental/domain/equipment"
	"github.com/ngoclaithe/camerental/domain/order"
	"github.com/ngoclaithe/camerental/domain/report"
	"github.com/ngoclaithe/camerental/domain/schedule"
	"github.com/ngoclaithe/camerental/domain/user"
	"github.com/ngoclaithe/camerental/pkg/errs"

	"github.com/jinzhu/copier"
)

// Matching fields come over with copier; money and enum fields are mapped by
// hand since their domain types don't match the wire's raw values.

func toUser(dto userDTO) (*user.User, error) {
	var u user.User
	if err := copier.Copy(&u, &dto); err != nil {
		return nil, errs.Wrap(err, "failed to map user")
	}
	role, err := user.NewRole(dto.Role)
	if err != nil {
		return nil, err
	}
	u.Role = role
	return &u, nil
}

func toCustomer(dto customerDTO) (*customer.Customer, error) {
	var c customer.Customer
	if err := copier.Copy(&c, &dto); err != nil {
		return nil, errs.Wrap(err, "failed to map customer")
	}
	return &c, nil
}

func toEquipment(dto equipmentDTO) (*equipment.Equipment, error) {
	var e equipment.Equipment
	if err := copier.Copy(&e, &dto); err != nil {
		return nil, errs.Wrap(err, "failed to map equipment")
	}
	status, err := equipment.NewStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	e.Status = status
	e.PricePerDay = order.NewMoney(dto.PricePerDay)
	return &e, nil
}

func toOrderView(dto orderDTO) (*order.View, error) {
	var v order.View
	if err := copier.Copy(&v, &dto); err != nil {
		return nil, errs.Wrap(err, "failed to map order")
	}
	status, err := order.NewStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	v.Status = status
	v.PricePerDay = order.NewMoney(dto.PricePerDay)
	v.Deposit = order.NewMoney(dto.Deposit)
	v.Discount = order.NewMoney(dto.Discount)
	v.TotalAmount = order.NewMoney(dto.TotalAmount)
	return &v, nil
}

func toAvailability(dto availabilityDTO) (schedule.EquipmentAvailability, error) {
	avail := schedule.EquipmentAvailability{
		EquipmentID:   dto.EquipmentID,
		EquipmentName: dto.EquipmentName,
	}
	for _, b := range dto.Bookings {
		status, err := order.NewStatus(b.Status)
		if err != nil {
			return schedule.EquipmentAvailability{}, err
		}
		avail.Bookings = append(avail.Bookings, schedule.Booking{
			OrderID:      b.OrderID,
			CustomerName: b.CustomerName,
			StartDate:    b.StartDate,
			EndDate:      b.EndDate,
			Status:       status,
		})
	}
	return avail, nil
}

func toSummary(dto summaryDTO) *report.Summary {
	return &report.Summary{
		TodayRevenue:        order.NewMoney(dto.TodayRevenue),
		MonthlyRevenue:      order.NewMoney(dto.MonthlyRevenue),
		ActiveOrders:        dto.ActiveOrders,
		PendingOrders:       dto.PendingOrders,
		AvailableEquipments: dto.AvailableEquipments,
	}
}

func fromEquipmentForm(form equipment.Form) equipmentForm {
	return equipmentForm{
		Name:         form.Name,
		Brand:        form.Brand,
		SerialNumber: form.SerialNumber,
		PricePerDay:  form.PricePerDay.VND(),
		Status:       form.Status.String(),
		ImageURLs:    form.ImageURLs,
	}
}

func fromCustomerForm(form customer.Form) customerForm {
	return customerForm{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Address: form.Address,
	}
}

func fromUserForm(form user.Form) createUserRequest {
	return createUserRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role.String(),
	}
}

func fromDraftOrder(draft *order.DraftOrder) createOrderRequest {
	return createOrderRequest{
		CustomerID:   draft.CustomerID(),
		EquipmentIDs: draft.EquipmentIDs(),
		StartDate:    draft.Period().Start(),
		EndDate:      draft.Period().End(),
		TotalDays:    draft.Days(),
		PricePerDay:  draft.PricePerDay().VND(),
		Deposit:      draft.Deposit().VND(),
		Discount:     draft.Discount().VND(),
		TotalAmount:  draft.TotalAmount().VND(),
		Note:         draft.Note().String(),
	}
}
