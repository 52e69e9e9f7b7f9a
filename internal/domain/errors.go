package domain

import "fmt"

// ConfigurationError сообщает об отсутствующей обязательной настройке.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not configured", e.Field)
}

// RetrievalError возвращается, когда лента ответила статусом вне диапазона 2xx.
type RetrievalError struct {
	StatusCode int
	Status     string
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("feed retrieval failed: %d %s", e.StatusCode, e.Status)
}

// DeliveryError возвращается, когда вебхук отклонил сообщение.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("webhook delivery failed: %d %s", e.StatusCode, e.Body)
}

// MalformedDateError возвращается при разборе строки, не являющейся датой YYYY-MM-DD.
type MalformedDateError struct {
	Input string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("invalid date: %q", e.Input)
}
