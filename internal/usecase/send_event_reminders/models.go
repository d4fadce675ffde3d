package send_event_reminders

import "fmt"

// Request модель запроса на рассылку напоминаний о мероприятии
type Request struct {
	EventID int64
}

// Response итог рассылки напоминаний.
// Каждое бронирование мероприятия дает одну попытку отправки;
// один клиент с несколькими бронированиями получит несколько SMS.
type Response struct {
	EventID int64
	Total   int // Всего бронирований у мероприятия
	Sent    int // Успешно отправленных напоминаний
	Failed  int // Неудачных попыток (включая нерезолвящихся клиентов)
}

// Summary человекочитаемый итог рассылки
func (r *Response) Summary() string {
	return fmt.Sprintf("Reminders sent: %d successful, %d failed.", r.Sent, r.Failed)
}
