package mail

type EventInquiryEmailData struct {
	Name            string
	Email           string
	Phone           string
	EventType       string
	PreferredDate   string
	EstimatedGuests string
	Message         string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	InboxTo  string // tasting room inbox that receives inquiry notices
}
