package domain

// MailMessage is one outgoing email. HTML and Text carry the same content;
// Text is the plain-text alternative part.
type MailMessage struct {
	From    string
	To      string
	CC      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// PresignedUpload is a time-limited upload target for one document file.
type PresignedUpload struct {
	URL       string `json:"url"`
	PublicURL string `json:"publicUrl"`
}
