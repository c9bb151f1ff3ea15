package domain

import (
	"errors"
	"strings"
)

// BookingStatus каноничный статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ErrUnknownStatus возвращается, когда строка не является каноничным статусом
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// CanonicalStatuses единственные статусы, которые показываются и принимаются для смены
var CanonicalStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// StatusAliases синонимы сырых статусов из CMS (ключи в нижнем регистре).
// Проверяется до проверки на каноничность.
var StatusAliases = map[string]BookingStatus{
	"accepted":  StatusConfirmed,
	"accept":    StatusConfirmed,
	"approved":  StatusConfirmed,
	"cancelled": StatusCancelled,
	"canceled":  StatusCancelled,
}

// IsCanonical возвращает true для pending, confirmed, cancelled
func (s BookingStatus) IsCanonical() bool {
	for _, c := range CanonicalStatuses {
		if s == c {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// NormalizeStatus приводит сырой статус к каноничному только для отображения.
// nil (null в CMS) показывается как pending, но в CMS не перезаписывается.
func NormalizeStatus(raw *string) BookingStatus {
	if raw == nil {
		return StatusPending
	}

	lowered := strings.ToLower(*raw)

	if canonical, ok := StatusAliases[lowered]; ok {
		return canonical
	}

	status := BookingStatus(lowered)
	if !status.IsCanonical() {
		return StatusPending
	}

	return status
}

// ParseStatus строгий разбор целевого статуса для смены (без синонимов и регистра)
func ParseStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsCanonical() {
		return "", ErrUnknownStatus
	}
	return status, nil
}
