package send_sms

// SendSMSRequest HTTP запрос на отправку SMS
type SendSMSRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendSMSResponse HTTP ответ с результатом отправки
type SendSMSResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid"`
}
