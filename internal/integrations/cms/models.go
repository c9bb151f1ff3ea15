package cms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Booking бронирование в формате CMS
type Booking struct {
	ID            int64      `json:"id"`
	DocumentID    string     `json:"documentId"`
	CustomerPhone string     `json:"customerPhone"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	Companion     *Companion `json:"companion"`
	CurrentStatus *string    `json:"currentStatus"` // null в CMS - статус не выставлен
	BookingID     string     `json:"bookingId"`
}

// Validate проверяет обязательные поля: нужен id или documentId
func (b *Booking) Validate() error {
	if b.ID <= 0 && strings.TrimSpace(b.DocumentID) == "" {
		return fmt.Errorf("%w: booking without id and documentId", ErrInvalidResponse)
	}
	return nil
}

// Companion компаньон (как relation бронирования и как профиль галереи)
type Companion struct {
	ID          int64           `json:"id"`
	DocumentID  string          `json:"documentId"`
	Name        string          `json:"name"`
	Age         FlexString      `json:"age,omitempty"`
	Location    string          `json:"location,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	Reviews     *int            `json:"reviews,omitempty"`
	Price       Number          `json:"price"`
	Specialty   []Specialty     `json:"specialty,omitempty"`
	StatusInfo  string          `json:"statusInfo,omitempty"`
	Description string          `json:"description,omitempty"`
	EventTypeID FlexString      `json:"event_type_id,omitempty"`
	Likes       int             `json:"likes"`
	Image       json.RawMessage `json:"image,omitempty"`
}

type Specialty struct {
	Label string `json:"label"`
}

// Number числовое поле, которое CMS отдает числом, строкой или null.
// Нечисловая строка - ошибка разбора.
type Number struct {
	Value float64
	Valid bool
}

// UnmarshalJSON принимает 1500, 1500.5, "1500", "1500.50", null и ""
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = Number{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: non-numeric value %q", ErrInvalidResponse, s)
		}
		*n = Number{Value: v, Valid: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: non-numeric value %s", ErrInvalidResponse, string(data))
	}
	*n = Number{Value: v, Valid: true}
	return nil
}

// MarshalJSON пишет число или null
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr значение или nil
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// FlexString строковое поле, которое CMS может отдать числом
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("%w: unexpected value %s", ErrInvalidResponse, string(data))
	}
	*f = FlexString(num.String())
	return nil
}

// listEnvelope ответ CMS со списком
type listEnvelope[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// itemEnvelope ответ CMS с одним объектом
type itemEnvelope[T any] struct {
	Data *T `json:"data"`
}

// Meta метаданные списка
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// CompanionList страница компаньонов галереи
type CompanionList struct {
	Data []Companion `json:"data"`
	Meta Meta        `json:"meta"`
}

// CompanionsQuery параметры списка компаньонов
type CompanionsQuery struct {
	Locale    string
	Page      int
	PageSize  int
	Sort      string
	WithImage bool
}

// Availability слоты компаньона; Slots == nil, если данных нет
type Availability struct {
	Slots json.RawMessage `json:"availability_slots"`
}

// updateStatusRequest тело PUT /api/bookings/{id}
type updateStatusRequest struct {
	Data updateStatusData `json:"data"`
}

type updateStatusData struct {
	CurrentStatus string `json:"currentStatus"`
}

// LoginRequest тело POST /api/auth/local
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse ответ на логин
type AuthResponse struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

// User пользователь CMS
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"userType,omitempty"`
	Role     *Role  `json:"role,omitempty"`
}

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// PanelTexts тексты админ-панели из CMS (локализованные)
type PanelTexts struct {
	NoBookingsLabel             string `json:"no_bookings_label"`
	DashboardTitle              string `json:"dashboard_title"`
	DashboardSubtitle           string `json:"dashboard_subtitle"`
	TotalBookingsLabel          string `json:"total_bookings_label"`
	ActiveCompanionsLabel       string `json:"active_companions_label"`
	MonthlyRevenueLabel         string `json:"monthly_revenue_label"`
	PendingBookingsLabel        string `json:"pending_bookings_label"`
	RecentBookingsLabel         string `json:"recent_bookings_label"`
	ClientLabel                 string `json:"client_label"`
	CompanionLabel              string `json:"companion_label"`
	DateTimeLabel               string `json:"date_time_label"`
	AmountLabel                 string `json:"amount_label"`
	StatusLabel                 string `json:"status_label"`
	ActionsLabel                string `json:"actions_label"`
	SearchBookingsPlaceholder   string `json:"search_bookings_placeholder"`
	ConfirmedLabel              string `json:"confirmed_label"`
	PendingLabel                string `json:"pending_label"`
	CancelledLabel              string `json:"cancelled_label,omitempty"`
	SidebarLogout               string `json:"sidebar_logout"`
	SidebarAdminUser            string `json:"sidebar_admin_user"`
	SidebarDashboard            string `json:"sidebar_dashboard"`
	BackToSite                  string `json:"back_to_site"`
	SidebarAdminRole            string `json:"sidebar_admin_role,omitempty"`
	StatusConfirmedNotification string `json:"status_confirmed_notification,omitempty"`
	StatusCancelledNotification string `json:"status_cancelled_notification,omitempty"`
	StatusPendingNotification   string `json:"status_pending_notification,omitempty"`
	LoadingLabel                string `json:"loading_label,omitempty"`
}

// ErrorResponse ошибка в формате CMS
type ErrorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}
