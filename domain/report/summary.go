// Package report holds the aggregate KPI snapshot the dashboard and the
// reports screen render. The numbers are computed server-side; this type is
// only the shape they arrive in.
package report

import "github.com/ngoclaithe/camerental/domain/order"

type Summary struct {
	TodayRevenue        order.Money
	MonthlyRevenue      order.Money
	ActiveOrders        int
	PendingOrders       int
	AvailableEquipments int
}
