package resend_notification

// ResendResponse ответ на повторную отправку письма
type ResendResponse struct {
	BookingID string `json:"bookingId"`
	Notified  bool   `json:"notified"`
}
